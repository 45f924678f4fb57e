package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idPtr() *uuid.UUID {
	id := uuid.New()
	return &id
}

func validRequest() SendMessageRequest {
	return SendMessageRequest{
		RecipientID: idPtr(),
		Subject:     "Reunion 2026",
		Body:        "Save the date!",
	}
}

func TestSendMessageRequest_ExactlyOneTarget(t *testing.T) {
	v := validator.New()

	t.Run("direct only is valid", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, req.Validate(v))
	})

	t.Run("school broadcast only is valid", func(t *testing.T) {
		req := validRequest()
		req.RecipientID = nil
		req.SchoolID = idPtr()
		assert.NoError(t, req.Validate(v))
	})

	t.Run("course broadcast only is valid", func(t *testing.T) {
		req := validRequest()
		req.RecipientID = nil
		req.CourseID = idPtr()
		assert.NoError(t, req.Validate(v))
	})

	t.Run("no target rejected", func(t *testing.T) {
		req := validRequest()
		req.RecipientID = nil
		assert.ErrorIs(t, req.Validate(v), ErrNoTarget)
	})

	t.Run("two targets rejected", func(t *testing.T) {
		req := validRequest()
		req.SchoolID = idPtr()
		assert.ErrorIs(t, req.Validate(v), ErrMultipleTarget)
	})

	t.Run("three targets rejected", func(t *testing.T) {
		req := validRequest()
		req.SchoolID = idPtr()
		req.CourseID = idPtr()
		assert.ErrorIs(t, req.Validate(v), ErrMultipleTarget)
	})
}

func TestSendMessageRequest_FieldRules(t *testing.T) {
	v := validator.New()

	req := validRequest()
	req.Subject = ""
	assert.Error(t, req.Validate(v))

	req = validRequest()
	req.Body = ""
	assert.Error(t, req.Validate(v))
}

func TestSendMessageRequest_NormalizeTrims(t *testing.T) {
	req := validRequest()
	req.Subject = "  Reunion 2026  "
	req.Body = "\n Save the date! \n"
	req.Normalize()
	assert.Equal(t, "Reunion 2026", req.Subject)
	assert.Equal(t, "Save the date!", req.Body)
}

func TestSendMessageRequest_ToModel(t *testing.T) {
	sender := uuid.New()
	req := validRequest()

	m := req.ToModel(sender)
	require.NotNil(t, m.SenderID)
	assert.Equal(t, sender, *m.SenderID)
	assert.Equal(t, req.RecipientID, m.RecipientID)
	assert.Equal(t, "Reunion 2026", m.Subject)
	assert.False(t, m.IsRead)
	assert.False(t, m.IsBroadcast())

	req = validRequest()
	req.RecipientID = nil
	req.SchoolID = idPtr()
	assert.True(t, req.ToModel(sender).IsBroadcast())
}
