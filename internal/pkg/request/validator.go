package request

import (
	"errors"
	"regexp"

	cErr "talentops/internal/pkg/error"

	"github.com/go-playground/validator/v10"
)

// Validator DTO 提供 "欄位.規則" → 訊息，覆寫 validator 預設錯誤文字。
// slice 欄位以 ".*" 比對，例如 "Items.*.required"。
type Validator interface {
	GetMessages() ValidatorMessages
}

type ValidatorMessages = map[string]string

const defaultValidateMessage = "Parameter error"

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// GetError 只回傳第一個失敗欄位的訊息
func GetError(request any, err error) *cErr.Error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return cErr.ValidateErr(defaultValidateMessage)
	}
	return cErr.ValidateErr(messageFor(request, validationErrors[0]))
}

func messageFor(request any, fe validator.FieldError) string {
	if custom, ok := request.(Validator); ok {
		key := indexPattern.ReplaceAllString(fe.Field(), ".*") + "." + fe.Tag()
		if message, ok := custom.GetMessages()[key]; ok {
			return message
		}
	}
	return fe.Error()
}
