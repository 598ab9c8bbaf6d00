package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/concesionario-pro/pkg/jwt"
)

const (
	testSecret = "secreto-de-test"
	testUser   = "00000000-0000-0000-0000-000000000001"
	testIssuer = "concesionario-pro-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := jwt.Generate(testSecret, testUser, "admin", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := jwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUser, userID)
	assert.Equal(t, "admin", role)
}

func TestGenerate_SecretVacio_RetornaError(t *testing.T) {
	_, err := jwt.Generate("", testUser, "admin", testIssuer, 60)
	assert.Error(t, err)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	// Expiración -1 minuto: el token nace expirado.
	tok, err := jwt.Generate(testSecret, testUser, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := jwt.Generate(testSecret, testUser, "admin", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secreto", tok)
	assert.Error(t, err, "la firma no debe validar con otro secret")
}

func TestParse_TokenMalformado_RetornaError(t *testing.T) {
	_, _, err := jwt.Parse(testSecret, "no.es.jwt")
	assert.Error(t, err)
}
