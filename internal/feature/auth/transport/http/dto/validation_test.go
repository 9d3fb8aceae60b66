package dto

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// bindRegister runs a request body through gin's binding for RegisterReq
// and returns the translated validation message, or "" on success.
func bindRegister(t *testing.T, body string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var msg string
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var req RegisterReq
		if err := c.ShouldBindJSON(&req); err != nil {
			msg = ValidationMessage(err)
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)
	return msg
}

func TestValidationMessage(t *testing.T) {
	longPassword := strings.Repeat("x", 151)

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "valid request produces no message",
			body:     `{"email":"a@x.com","password":"secret"}`,
			expected: "",
		},
		{
			name:     "missing email",
			body:     `{"password":"secret"}`,
			expected: "Please enter your email address",
		},
		{
			name:     "malformed email",
			body:     `{"email":"not-an-email","password":"secret"}`,
			expected: "Email must be a valid email",
		},
		{
			name:     "missing password",
			body:     `{"email":"a@x.com"}`,
			expected: "Please enter your password",
		},
		{
			name:     "password below minimum length",
			body:     `{"email":"a@x.com","password":"abcd"}`,
			expected: "Password must be atleast 5 chars long",
		},
		{
			name:     "password above maximum length",
			body:     `{"email":"a@x.com","password":"` + longPassword + `"}`,
			expected: "Password must not be more than 150 chars long",
		},
		{
			name:     "malformed JSON falls back to a generic message",
			body:     `{"email":`,
			expected: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bindRegister(t, tt.body))
		})
	}
}

func TestValidationMessage_BoundaryLengths(t *testing.T) {
	// 5 and 150 characters are both accepted
	assert.Empty(t, bindRegister(t, `{"email":"a@x.com","password":"abcde"}`))
	assert.Empty(t, bindRegister(t, `{"email":"a@x.com","password":"`+strings.Repeat("x", 150)+`"}`))
}
