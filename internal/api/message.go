package api

import (
	"context"
	"errors"
	"io"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/headline/internal/errors"
	"github.com/diogo/headline/internal/models"
)

// maxResponseBytes bounds how much of a response body is read
const maxResponseBytes = 1 << 20

// Payload shape errors
var (
	ErrInvalidJSON    = errors.New("payload is not valid JSON")
	ErrNotObject      = errors.New("payload is not a JSON object")
	ErrMissingMessage = errors.New("missing " + models.PayloadField + " field")
	ErrMessageType    = errors.New(models.PayloadField + " field is not a string")
)

// FetchMessage issues one GET to the endpoint, with no query, headers or
// body, and extracts the message field of the JSON payload. Every failure is
// returned as a RequestFailedError.
func (c *MessageClient) FetchMessage(ctx context.Context) (models.Message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return models.Message{}, apierrors.NewNetworkFailure(c.endpoint, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The transport may report a canceled request with its own error;
		// keep context cancellation visible to errors.Is.
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return models.Message{}, apierrors.NewNetworkFailure(c.endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return models.Message{}, apierrors.NewNetworkFailure(c.endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.Message{}, apierrors.NewStatusFailure(c.endpoint, resp.StatusCode, string(body))
	}

	msg, err := ParseMessage(body)
	if err != nil {
		failure := apierrors.NewPayloadFailure(c.endpoint, "malformed payload")
		failure.Cause = err
		return models.Message{}, failure
	}

	c.log.V(1).Info("message fetched", "endpoint", c.endpoint, "bytes", len(body))
	return msg, nil
}

// ParseMessage extracts the message text from a response payload.
// The payload must be a JSON object whose message field is a string;
// an empty string is a valid message.
func ParseMessage(body []byte) (models.Message, error) {
	if !gjson.ValidBytes(body) {
		return models.Message{}, ErrInvalidJSON
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return models.Message{}, ErrNotObject
	}

	field := root.Get(models.PayloadField)
	if !field.Exists() {
		return models.Message{}, ErrMissingMessage
	}
	if field.Type != gjson.String {
		return models.Message{}, ErrMessageType
	}

	return models.NewMessage(field.Str), nil
}
