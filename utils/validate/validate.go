package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"talentops/internal/core"
	cErr "talentops/internal/pkg/error"
	"talentops/internal/pkg/request"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterRules 向 gin 的 validator 註冊自訂規則，啟動時呼叫一次
func RegisterRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return RegisterRulesOn(v)
}

func RegisterRulesOn(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"calendar_date": func(fl validator.FieldLevel) bool {
			_, err := core.ParseCalendarDate(fl.Field().String())
			return err == nil
		},
		"quarter": func(fl validator.FieldLevel) bool {
			_, err := core.ParseQuarter(fl.Field().String())
			return err == nil
		},
		"object_id": func(fl validator.FieldLevel) bool {
			return primitive.IsValidObjectID(fl.Field().String())
		},
		"scope_type": func(fl validator.FieldLevel) bool {
			return IsValidScopeType(fl.Field().String())
		},
		"perspective": func(fl validator.FieldLevel) bool {
			return IsValidPerspective(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// 輸出格式化的 validator error（欄位 json 名/型別/規則列表）
func ValidationErrorResponse(obj interface{}, err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		var b strings.Builder
		b.WriteString("Validation error:\n")
		for _, fe := range errs {
			field := fieldName(obj, fe.StructField())
			ftype := fieldType(obj, fe.StructField())
			format := getFieldFormat(obj, fe.StructField())
			b.WriteString(fmt.Sprintf(" - Field \"%s\" (type: %s) failed the '%s' validation (rules: %v)\n",
				field, ftype, fe.Tag(), format))
		}
		return b.String()
	}
	return fmt.Sprintf("Validation error: %s", err.Error())
}

func structType(obj interface{}) reflect.Type {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// fieldName 依序取 json / form tag，兩者皆無時回傳 struct 欄位名
func fieldName(obj interface{}, structField string) string {
	if f, ok := structType(obj).FieldByName(structField); ok {
		for _, key := range []string{"json", "form"} {
			tag := f.Tag.Get(key)
			if tag != "" && tag != "-" {
				return strings.Split(tag, ",")[0]
			}
		}
	}
	return structField
}

func fieldType(obj interface{}, structField string) string {
	if f, ok := structType(obj).FieldByName(structField); ok {
		return f.Type.Name()
	}
	return ""
}

func getFieldFormat(obj interface{}, structField string) []string {
	if f, ok := structType(obj).FieldByName(structField); ok {
		tag := f.Tag.Get("binding")
		if tag != "" {
			return strings.Split(tag, ",")
		}
	}
	return nil
}

func ParseObjectID(c *gin.Context, key string) (id primitive.ObjectID, cause error, responseErr error) {
	id, err := primitive.ObjectIDFromHex(c.Param(key))
	if err != nil {
		return primitive.NilObjectID, err, cErr.ValidatePathParamsErr("invalid " + key)
	}
	return id, nil, nil
}

func BindAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindJSON(req); err != nil {
		return err, bindError(req, err)
	}
	return nil, nil
}

func BindQuery(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindQuery(req); err != nil {
		return err, bindError(req, err)
	}
	return nil, nil
}

// bindError DTO 有自訂訊息時優先使用，否則輸出欄位/規則明細
func bindError(req any, err error) *cErr.Error {
	var errs validator.ValidationErrors
	if _, ok := req.(request.Validator); ok && errors.As(err, &errs) {
		return request.GetError(req, err)
	}
	return cErr.ValidateErr(ValidationErrorResponse(req, err))
}

// ParseDateQuery 解析 YYYY-MM-DD 查詢參數，空值時回傳 fallback
func ParseDateQuery(c *gin.Context, key string, fallback core.CalendarDate) (core.CalendarDate, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	date, err := core.ParseCalendarDate(raw)
	if err != nil {
		return core.CalendarDate{}, cErr.InvalidDate(fmt.Sprintf("%s must be YYYY-MM-DD, got %q", key, raw))
	}
	return date, nil
}

// ===== ScopeType =====
func IsValidScopeType(scope string) bool {
	return core.ScopeType(scope).Valid()
}

// ===== Perspective =====
var validPerspectives = []core.TargetPerspective{
	core.PerspectiveLead,
	core.PerspectiveMember,
}

func IsValidPerspective(perspective string) bool {
	for _, v := range validPerspectives {
		if core.TargetPerspective(perspective) == v {
			return true
		}
	}
	return false
}

// ValidYear 季度目標可接受的年度範圍
func ValidYear(year int) bool {
	return year >= 2000 && year <= time.Now().UTC().Year()+10
}
