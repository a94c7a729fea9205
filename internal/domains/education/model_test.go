package education

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"portfolio-backend/internal/shared/apperror"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func gradePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validEntry() *Education {
	return &Education{
		Institution:   "MIT",
		Degree:        "BSc Computer Science",
		EducationType: TypeDegree,
		StartDate:     date("2018-09-01"),
	}
}

func validRequest() UpsertRequest {
	return UpsertRequest{
		Institution:   "MIT",
		Degree:        "BSc Computer Science",
		EducationType: TypeDegree,
		StartDate:     "2018-09-01",
	}
}

func TestUpsertRequestValidate(t *testing.T) {
	t.Run("valid passes", func(t *testing.T) {
		assert.NoError(t, validRequest().Validate())
	})

	t.Run("collects every offender", func(t *testing.T) {
		req := UpsertRequest{EducationType: "seminar"}
		assert.ElementsMatch(t,
			[]string{"institution", "degree", "education_type", "start_date"},
			apperror.FieldsOf(req.Validate()))
	})

	t.Run("grade bounds inclusive", func(t *testing.T) {
		req := validRequest()
		req.Grade = gradePtr("4.00")
		assert.NoError(t, req.Validate())

		req.Grade = gradePtr("0.00")
		assert.NoError(t, req.Validate())

		req.Grade = gradePtr("4.01")
		assert.Equal(t, []string{"grade"}, apperror.FieldsOf(req.Validate()))

		req.Grade = gradePtr("-0.5")
		assert.Equal(t, []string{"grade"}, apperror.FieldsOf(req.Validate()))
	})

	t.Run("nil grade allowed", func(t *testing.T) {
		assert.NoError(t, validRequest().Validate())
	})

	t.Run("end before start rejected", func(t *testing.T) {
		req := validRequest()
		req.EndDate = "2017-06-01"
		assert.Equal(t, []string{"end_date"}, apperror.FieldsOf(req.Validate()))
	})
}

func TestGraduationYear(t *testing.T) {
	e := validEntry()
	assert.Nil(t, e.GraduationYear())

	end := date("2022-06-15")
	e.EndDate = &end
	if year := e.GraduationYear(); assert.NotNil(t, year) {
		assert.Equal(t, 2022, *year)
	}
}

func TestToResponseDerivesGraduationYear(t *testing.T) {
	e := validEntry()
	end := date("2022-06-15")
	e.EndDate = &end
	e.Grade = gradePtr("3.80")

	resp := ToResponse(e)
	if assert.NotNil(t, resp.GraduationYear) {
		assert.Equal(t, 2022, *resp.GraduationYear)
	}
	if assert.NotNil(t, resp.EndDate) {
		assert.Equal(t, "2022-06-15", *resp.EndDate)
	}
	assert.True(t, resp.Grade.Equal(decimal.RequireFromString("3.80")))
}
