package controllers_test

import (
	"testing"

	"learntrack/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSignup(t *testing.T) {
	resp, err := app.Test(jsonRequest("POST", "/api/auth/signup", "", map[string]string{
		"email":    "signup@example.com",
		"password": "password123",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result map[string]interface{}
	decodeBody(resp, &result)
	assert.NotEmpty(t, result["token"])
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "signup@example.com", user["email"])
	assert.NotEmpty(t, user["id"])
}

func TestSignupMissingFields(t *testing.T) {
	resp, err := app.Test(jsonRequest("POST", "/api/auth/signup", "", map[string]string{
		"email": "nopassword@example.com",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSignupDuplicateEmail(t *testing.T) {
	signupUser(t, "dup@example.com")

	resp, err := app.Test(jsonRequest("POST", "/api/auth/signup", "", map[string]string{
		"email":    "dup@example.com",
		"password": "password123",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var result utils.ErrorResponse
	decodeBody(resp, &result)
	assert.Equal(t, "User already exists", result.Message)
}

func TestLogin(t *testing.T) {
	signupUser(t, "login@example.com")

	resp, err := app.Test(jsonRequest("POST", "/api/auth/login", "", map[string]string{
		"email":    "login@example.com",
		"password": "password123",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	decodeBody(resp, &result)
	assert.NotEmpty(t, result["token"])
	assert.NotEmpty(t, result["user"])
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginFailuresAreIdentical(t *testing.T) {
	signupUser(t, "probe@example.com")

	unknownResp, err := app.Test(jsonRequest("POST", "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	}))
	assert.NoError(t, err)

	wrongResp, err := app.Test(jsonRequest("POST", "/api/auth/login", "", map[string]string{
		"email":    "probe@example.com",
		"password": "wrongpassword",
	}))
	assert.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, unknownResp.StatusCode)
	assert.Equal(t, wrongResp.StatusCode, unknownResp.StatusCode)

	var unknownBody, wrongBody utils.ErrorResponse
	decodeBody(unknownResp, &unknownBody)
	decodeBody(wrongResp, &wrongBody)
	assert.Equal(t, "Invalid credentials", unknownBody.Message)
	assert.Equal(t, wrongBody.Message, unknownBody.Message)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	resp, err := app.Test(jsonRequest("GET", "/api/categories", "", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/categories", "not-a-token", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
