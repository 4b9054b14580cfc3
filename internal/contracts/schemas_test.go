package contracts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "CreateCommentRequest/1.0.0", generateKeyFromPath("requests/create-comment/v1.json"))
	assert.Equal(t, "LoginUserRequest/2.0.0", generateKeyFromPath("requests/login-user/v2.json"))
	assert.Equal(t, "", generateKeyFromPath("requests/v1.json"))
}

func TestSchemasAreCompiled(t *testing.T) {
	for _, requestType := range []string{
		CreateCommentRequest, CreateOfferRequest, RegisterUserRequest, LoginUserRequest, UpdateAvatarRequest,
	} {
		_, ok := compiledSchemas[requestType+"/"+V1]
		assert.True(t, ok, requestType)
	}
}

func TestValidateRequest_Comment(t *testing.T) {
	tests := []struct {
		name string
		body string
		ok   bool
	}{
		{name: "valid", body: `{"text":"Lovely stay","rating":5}`, ok: true},
		{name: "shortest text", body: `{"text":"abcde","rating":1}`, ok: true},
		{name: "short text", body: `{"text":"abcd","rating":3}`},
		{name: "long text", body: `{"text":"` + strings.Repeat("a", 1025) + `","rating":3}`},
		{name: "rating below range", body: `{"text":"Lovely stay","rating":0}`},
		{name: "rating above range", body: `{"text":"Lovely stay","rating":6}`},
		{name: "fractional rating", body: `{"text":"Lovely stay","rating":2.5}`},
		{name: "string rating", body: `{"text":"Lovely stay","rating":"5"}`},
		{name: "missing rating", body: `{"text":"Lovely stay"}`},
		{name: "unknown field", body: `{"text":"Lovely stay","rating":5,"offerId":"x"}`},
		{name: "not json", body: `{"text":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(CreateCommentRequest, V1, []byte(tt.body))
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestValidateRequest_Register(t *testing.T) {
	err := ValidateRequest(RegisterUserRequest, V1, []byte(`{"email":"keks@example.com","name":"Keks","password":"secret1","type":"pro"}`))
	require.NoError(t, err)

	err = ValidateRequest(RegisterUserRequest, V1, []byte(`{"email":"keks","name":"Keks","password":"secret1","type":"pro"}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	err = ValidateRequest(RegisterUserRequest, V1, []byte(`{"email":"keks@example.com","name":"Keks","password":"secret1","type":"admin"}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Contains(t, err.Error(), "/type")
}

func TestValidateRequest_UnknownSchema(t *testing.T) {
	err := ValidateRequest("DeleteEverythingRequest", V1, []byte(`{}`))
	assert.ErrorIs(t, err, ErrSchemaNotFound)

	err = ValidateRequest(CreateCommentRequest, "9.0.0", []byte(`{}`))
	assert.ErrorIs(t, err, ErrSchemaNotFound)
}
