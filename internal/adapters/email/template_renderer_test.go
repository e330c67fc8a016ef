package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomblock/internal/domain"
)

func TestTemplateRenderer_Confirmation(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.OrderConfirmationEmailData{
		Email:         "jane@example.com",
		FirstName:     "Jane",
		Confirmation:  "A1B2C3D4",
		RoomCount:     2,
		OccupantCount: 5,
	}

	subject, htmlBody, textBody, err := r.Render("confirmation", data)
	require.NoError(t, err)

	assert.Contains(t, subject, "A1B2C3D4")
	assert.False(t, strings.ContainsAny(subject, "\r\n"), "subject must be a single line")
	assert.Contains(t, htmlBody, "A1B2C3D4")
	assert.Contains(t, textBody, "A1B2C3D4")
	assert.Contains(t, textBody, "Jane")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()

	_, _, _, err := r.Render("does-not-exist", nil)
	assert.Error(t, err)
}
