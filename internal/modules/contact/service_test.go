package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estatehub/internal/pkg/mailer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg mailer.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func TestSend_Delivers(t *testing.T) {
	mm := new(MockMailer)
	svc := NewService(mm, "inbox@estatehub.test")

	mm.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To[0] == "inbox@estatehub.test" &&
			msg.ReplyTo == "jane@example.com" &&
			msg.Subject == "Contact Form Message from Jane" &&
			strings.Contains(msg.Body, "I want to see the villa")
	})).Return(nil)

	err := svc.Send(context.Background(), SendRequest{Name: " Jane ", Email: "jane@example.com", Message: "  I want to see the villa  "})
	require.NoError(t, err)
	mm.AssertExpectations(t)
}

func TestSend_Validation(t *testing.T) {
	svc := NewService(new(MockMailer), "inbox@estatehub.test")

	err := svc.Send(context.Background(), SendRequest{Name: "Jane", Email: "jane@example.com", Message: "   short   "})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorContains(t, err, "at least 10 characters")

	err = svc.Send(context.Background(), SendRequest{Name: "  ", Email: "jane@example.com", Message: "long enough message"})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Send(context.Background(), SendRequest{Name: "Jane", Email: "jane at example", Message: "long enough message"})
	assert.ErrorContains(t, err, "invalid email address")
}

func TestSend_NotConfigured(t *testing.T) {
	req := SendRequest{Name: "Jane", Email: "jane@example.com", Message: "long enough message"}

	assert.ErrorIs(t, NewService(nil, "inbox@estatehub.test").Send(context.Background(), req), ErrNotConfigured)
	assert.ErrorIs(t, NewService(new(MockMailer), "").Send(context.Background(), req), ErrNotConfigured)

	mm := new(MockMailer)
	mm.On("Send", mock.Anything, mock.Anything).Return(mailer.ErrNotConfigured)
	assert.ErrorIs(t, NewService(mm, "inbox@estatehub.test").Send(context.Background(), req), ErrNotConfigured)
}

func TestSend_TransportFailure(t *testing.T) {
	mm := new(MockMailer)
	mm.On("Send", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	err := NewService(mm, "inbox@estatehub.test").Send(context.Background(),
		SendRequest{Name: "Jane", Email: "jane@example.com", Message: "long enough message"})
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestHandler_Send(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mm := new(MockMailer)
	mm.On("Send", mock.Anything, mock.Anything).Return(nil)

	r := gin.New()
	NewHandler(NewService(mm, "inbox@estatehub.test")).RegisterRoutes(r.Group("/api/v1"), func(c *gin.Context) { c.Next() })

	post := func(body map[string]string) *httptest.ResponseRecorder {
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact/send", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post(map[string]string{"name": "Jane", "email": "jane@example.com", "message": "Please call me back"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message sent successfully")

	w = post(map[string]string{"name": "Jane", "email": "not-an-email", "message": "Please call me back"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(map[string]string{"name": "Jane", "email": "jane@example.com", "message": "too short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least 10 characters")
}

func TestHandler_NotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(nil, "")).RegisterRoutes(r.Group("/api/v1"), func(c *gin.Context) { c.Next() })

	raw, _ := json.Marshal(map[string]string{"name": "Jane", "email": "jane@example.com", "message": "Please call me back"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact/send", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "MAIL_NOT_CONFIGURED")
}
