package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/lithammer/shortuuid/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type refundEvent struct {
	UserID   string `json:"user_id"`
	SerialNo string `json:"serial_no"`
	Status   string `json:"status"`
}

func httpAddr(path string) string {
	return "http://localhost:8080" + path
}

func doJSON(t *testing.T, method, path string, body any) apiResponse {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	httpReq, err := http.NewRequest(method, httpAddr(path), &buf)
	require.NoError(t, err)
	httpReq.Header.Set("Correlation-ID", shortuuid.New())
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

func doJSONCollect(t *assert.CollectT, method, path string) apiResponse {
	httpReq, err := http.NewRequest(method, httpAddr(path), nil)
	if !assert.NoError(t, err) {
		return apiResponse{}
	}

	resp, err := http.DefaultClient.Do(httpReq)
	if !assert.NoError(t, err) {
		return apiResponse{}
	}
	defer resp.Body.Close()

	var decoded apiResponse
	if !assert.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded)) {
		return apiResponse{}
	}
	return decoded
}

func publishRefund(t *testing.T, publisher watermillMessage.Publisher, topic string, event refundEvent) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	msg := watermillMessage.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("correlation_id", shortuuid.New())

	require.NoError(t, publisher.Publish(topic, msg))
}

func waitForHttpServer(t *testing.T) {
	t.Helper()

	require.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			resp, err := http.Get(httpAddr("/ping"))
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			assert.Less(t, resp.StatusCode, 300, "API not ready, http status: %d", resp.StatusCode)
		},
		time.Second*10,
		time.Millisecond*50,
	)
}
