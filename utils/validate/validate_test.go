package validate

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ruleProbe struct {
	Date        string `json:"date" binding:"calendar_date"`
	Quarter     string `json:"quarter" binding:"quarter"`
	ID          string `json:"id" binding:"object_id"`
	ScopeType   string `json:"scopeType" binding:"scope_type"`
	Perspective string `json:"as" binding:"perspective"`
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterRulesOn(v))
	return v
}

func TestRegisterRulesOn(t *testing.T) {
	v := newValidator(t)
	valid := ruleProbe{
		Date:        "2025-07-01",
		Quarter:     "q4",
		ID:          "64b7f0c2a1b2c3d4e5f60718",
		ScopeType:   "team",
		Perspective: "lead",
	}
	require.NoError(t, v.Struct(valid))

	testCases := []struct {
		name   string
		mutate func(p *ruleProbe)
		tag    string
	}{
		{name: "日期格式錯誤", mutate: func(p *ruleProbe) { p.Date = "2025/07/01" }, tag: "calendar_date"},
		{name: "季度錯誤", mutate: func(p *ruleProbe) { p.Quarter = "Q0" }, tag: "quarter"},
		{name: "id 錯誤", mutate: func(p *ruleProbe) { p.ID = "xyz" }, tag: "object_id"},
		{name: "scope 錯誤", mutate: func(p *ruleProbe) { p.ScopeType = "company" }, tag: "scope_type"},
		{name: "perspective 錯誤", mutate: func(p *ruleProbe) { p.Perspective = "boss" }, tag: "perspective"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			probe := valid
			tc.mutate(&probe)
			err := v.Struct(probe)
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			require.Len(t, errs, 1)
			assert.Equal(t, tc.tag, errs[0].Tag())

			message := ValidationErrorResponse(&probe, err)
			assert.Contains(t, message, tc.tag)
		})
	}
}

func TestValidationErrorResponse_FieldName(t *testing.T) {
	v := newValidator(t)
	probe := ruleProbe{Date: "bad", Quarter: "Q1", ID: "64b7f0c2a1b2c3d4e5f60718", ScopeType: "organization", Perspective: "member"}
	message := ValidationErrorResponse(&probe, v.Struct(probe))
	assert.Contains(t, message, `Field "date"`)
}

func TestValidYear(t *testing.T) {
	assert.True(t, ValidYear(2025))
	assert.False(t, ValidYear(1999))
	assert.False(t, ValidYear(9999))
}
