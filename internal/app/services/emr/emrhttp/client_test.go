package emrhttp

import (
	"context"
	"fmt"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type bedPayload struct {
	UUID   string `json:"uuid"`
	Number string `json:"bedNumber"`
}

func TestGet(t *testing.T) {
	t.Run("Decodes Body And Sends Basic Auth", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			assert.True(t, ok, "every EMR call carries basic auth")
			assert.Equal(t, "emr-user", username)
			assert.Equal(t, "emr-pass", password)
			fmt.Fprint(w, `{"uuid":"bed-1","bedNumber":"MB-01"}`)
		}))
		defer server.Close()

		client := NewClient("emr-user", "emr-pass", zap.NewNop())

		var bed bedPayload
		err := client.Get(context.Background(), server.URL, "bed", &bed)
		assert.NoError(t, err)
		assert.Equal(t, "bed-1", bed.UUID)
		assert.Equal(t, "MB-01", bed.Number)
	})

	t.Run("Retries On Server Errors", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) <= 2 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			fmt.Fprint(w, `{"uuid":"bed-1"}`)
		}))
		defer server.Close()

		client := NewClient("emr-user", "emr-pass", zap.NewNop())

		var bed bedPayload
		err := client.Get(context.Background(), server.URL, "bed", &bed)
		assert.NoError(t, err, "a 500 should be retried until the EMR recovers")
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
		assert.Equal(t, "bed-1", bed.UUID)
	})

	t.Run("Gives Up After The Retry Budget", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient("emr-user", "emr-pass", zap.NewNop())

		err := client.Get(context.Background(), server.URL, "bed", &bedPayload{})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Equal(t, int32(constvars.EmrFetchRetryCount+1), atomic.LoadInt32(&calls))
	})

	t.Run("Not Found Is Not Retried", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient("emr-user", "emr-pass", zap.NewNop())

		err := client.Get(context.Background(), server.URL, "bed", &bedPayload{})
		assert.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "client errors should fail fast")
	})
}

func TestPost(t *testing.T) {
	t.Run("Surfaces The Operation Outcome Message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"message":"Bed already assigned","code":"webservices.rest"}}`)
		}))
		defer server.Close()

		client := NewClient("emr-user", "emr-pass", zap.NewNop())

		err := client.Post(context.Background(), server.URL, "bedAssignment", map[string]string{"bed": "MB-01"}, nil)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.DevMessage, "Bed already assigned", "the EMR error detail should reach the logs")
	})

	t.Run("Nil Destination Skips Decoding", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `not json at all`)
		}))
		defer server.Close()

		client := NewClient("emr-user", "emr-pass", zap.NewNop())
		err := client.Post(context.Background(), server.URL, "visit", map[string]string{"patient": "patient-1"}, nil)
		assert.NoError(t, err)
	})
}

func TestDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient("emr-user", "emr-pass", zap.NewNop())
	assert.NoError(t, client.Delete(context.Background(), server.URL, "encounter"))
}
