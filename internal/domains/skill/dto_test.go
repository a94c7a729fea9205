package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-backend/internal/shared/apperror"
)

func TestUpsertRequestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  UpsertRequest
		want []string
	}{
		{"valid", UpsertRequest{Name: "Go", Category: CategoryBackend, Proficiency: 90}, nil},
		{"missing name", UpsertRequest{Category: CategoryTools, Proficiency: 50}, []string{"name"}},
		{"unknown category", UpsertRequest{Name: "Go", Category: "gamedev", Proficiency: 50}, []string{"category"}},
		{"proficiency too low", UpsertRequest{Name: "Go", Category: CategoryBackend, Proficiency: 0}, []string{"proficiency"}},
		{"proficiency too high", UpsertRequest{Name: "Go", Category: CategoryBackend, Proficiency: 101}, []string{"proficiency"}},
		{"everything wrong", UpsertRequest{}, []string{"name", "category", "proficiency"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ElementsMatch(t, tt.want, apperror.FieldsOf(err))
		})
	}
}

func TestProficiencyBoundsInclusive(t *testing.T) {
	low := UpsertRequest{Name: "Bash", Category: CategoryTools, Proficiency: MinProficiency}
	high := UpsertRequest{Name: "Go", Category: CategoryBackend, Proficiency: MaxProficiency}

	assert.NoError(t, low.Validate())
	assert.NoError(t, high.Validate())
}
