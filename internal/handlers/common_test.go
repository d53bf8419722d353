package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorLogsInternalFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var logged bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&logged)
	defer log.SetOutput(prev)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, errors.New("connection reset by backend"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	// The detail goes to the server log, never to the caller.
	require.Contains(t, logged.String(), "connection reset by backend")
	require.NotContains(t, w.Body.String(), "connection reset")
	require.Contains(t, w.Body.String(), "internal server error")
}
