package commands

import (
	"errors"
	"path/filepath"
	"testing"

	"filekit/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSampleRespond(t *testing.T) {
	mw := &MockSampleWriter{}
	mw.On("WriteSample", mock.Anything, filepath.Join("/work", "people.xlsx")).Return(nil)

	settings := defaultSettings("/work")
	settings.Sheet.SampleName = "people.xlsx"

	h := NewSampleHandler(mw, "sample-xlsx")
	err := h.Respond(t.Context(), &domain.Invocation{Settings: settings})

	assert.NoError(t, err)
	assert.Equal(t, "sample-xlsx", h.GetCommand())
	mw.AssertExpectations(t)
}

func TestSampleRespondError(t *testing.T) {
	mw := &MockSampleWriter{}
	mw.On("WriteSample", mock.Anything, mock.Anything).Return(errors.New("mock error"))

	h := NewSampleHandler(mw, "sample-xlsx")
	err := h.Respond(t.Context(), &domain.Invocation{Settings: defaultSettings("/work")})

	assert.EqualError(t, err, "mock error")
}
