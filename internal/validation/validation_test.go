package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/validation"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestCreateBoardInput(t *testing.T) {
	valid := validation.CreateBoardInput{
		Title:      "Roadmap",
		Background: validation.BackgroundInput{Type: "color", Value: "#112233"},
	}

	tests := []struct {
		name   string
		mutate func(in *validation.CreateBoardInput)
		field  string
		rule   string
	}{
		{"valid", func(in *validation.CreateBoardInput) {}, "", ""},
		{"one char title", func(in *validation.CreateBoardInput) { in.Title = "a" }, "title", "min"},
		{"two char title", func(in *validation.CreateBoardInput) { in.Title = "ab" }, "", ""},
		{"54 char title", func(in *validation.CreateBoardInput) { in.Title = strings.Repeat("x", 54) }, "", ""},
		{"55 char title", func(in *validation.CreateBoardInput) { in.Title = strings.Repeat("x", 55) }, "title", "max"},
		{"blank title", func(in *validation.CreateBoardInput) { in.Title = "    " }, "title", "notblank"},
		{"unknown background", func(in *validation.CreateBoardInput) { in.Background.Type = "video" }, "background.type", "oneof"},
		{"empty background value", func(in *validation.CreateBoardInput) { in.Background.Value = "" }, "background.value", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := validation.Struct(in)

			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *validation.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.rule, verr.Fields[tt.field])
		})
	}
}

func TestListBoardsInput(t *testing.T) {
	assert.NoError(t, validation.Struct(validation.ListBoardsInput{}))
	assert.NoError(t, validation.Struct(validation.ListBoardsInput{Limit: intPtr(100)}))
	assert.Error(t, validation.Struct(validation.ListBoardsInput{Limit: intPtr(0)}))
	assert.Error(t, validation.Struct(validation.ListBoardsInput{Limit: intPtr(101)}))
	assert.Error(t, validation.Struct(validation.ListBoardsInput{Cursor: "not-a-uuid"}))
}

func TestCardInputs(t *testing.T) {
	listID := "5f1c3c2e-8b7a-4a43-9d7b-2d7a7c9f0e11"

	assert.NoError(t, validation.Struct(validation.CreateCardInput{ListID: listID, Title: "x"}))
	assert.Error(t, validation.Struct(validation.CreateCardInput{ListID: listID}))
	assert.Error(t, validation.Struct(validation.CreateCardInput{ListID: "nope", Title: "x"}))

	assert.NoError(t, validation.Struct(validation.UpdateCardPositionInput{Position: intPtr(0)}))
	assert.Error(t, validation.Struct(validation.UpdateCardPositionInput{}))
	assert.Error(t, validation.Struct(validation.UpdateCardPositionInput{Position: intPtr(-1)}))

	assert.NoError(t, validation.Struct(validation.UpdateCardInput{}))
	assert.Error(t, validation.Struct(validation.UpdateCardInput{Title: strPtr("")}))
	assert.Error(t, validation.Struct(validation.UpdateCardInput{ListID: strPtr("nope")}))
}

func TestCreateLabelInput_Color(t *testing.T) {
	boardID := "5f1c3c2e-8b7a-4a43-9d7b-2d7a7c9f0e11"

	assert.NoError(t, validation.Struct(validation.CreateLabelInput{BoardID: boardID, Name: "bug", Color: "#a1b2c3"}))
	assert.Error(t, validation.Struct(validation.CreateLabelInput{BoardID: boardID, Name: "bug", Color: "#abc"}))
	assert.Error(t, validation.Struct(validation.CreateLabelInput{BoardID: boardID, Name: "bug", Color: "red"}))
}

func TestValidationError_Message(t *testing.T) {
	err := &validation.ValidationError{Fields: map[string]string{"title": "min", "background.type": "oneof"}}
	assert.Equal(t, "validation failed: background.type: oneof, title: min", err.Error())
}

func TestFromBindError_NonValidator(t *testing.T) {
	err := validation.FromBindError(errors.New("unexpected EOF"))
	assert.Equal(t, "malformed", err.Fields["request"])
}
