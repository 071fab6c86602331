package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"resource-share/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// InitValidator 初始化验证器
func InitValidator() {
	validate = validator.New()

	// 错误信息中使用 label 标签，其次是 json 字段名
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	// 注册自定义验证函数
	_ = validate.RegisterValidation("platform", validatePlatform)
	_ = validate.RegisterValidation("resource_type", validateResourceType)
}

// GetValidator 获取验证器实例
func GetValidator() *validator.Validate {
	validateOnce.Do(InitValidator)
	return validate
}

// validatePlatform 验证网盘平台
func validatePlatform(fl validator.FieldLevel) bool {
	return models.Platform(fl.Field().String()).IsValid()
}

// validateResourceType 验证资源类型
func validateResourceType(fl validator.FieldLevel) bool {
	return models.ResourceType(fl.Field().String()).IsValid()
}

// ValidateStruct 验证结构体
func ValidateStruct(s interface{}) error {
	v := GetValidator()
	if err := v.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError 格式化验证错误
func formatValidationError(err error) error {
	var messages []string

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			param := e.Param()

			var message string
			switch e.Tag() {
			case "required":
				message = fmt.Sprintf("%s是必填字段", field)
			case "min":
				message = fmt.Sprintf("%s不能小于%s", field, param)
			case "max":
				message = fmt.Sprintf("%s长度不能大于%s", field, param)
			case "platform":
				message = fmt.Sprintf("%s必须是 baidu、aliyun、tencent、123pan、other 之一", field)
			case "resource_type":
				message = fmt.Sprintf("%s必须是 document、video、audio、software、image、compressed、other 之一", field)
			default:
				message = fmt.Sprintf("%s验证失败: %s", field, e.Tag())
			}

			messages = append(messages, message)
		}
	}

	if len(messages) > 0 {
		return errors.New(strings.Join(messages, "; "))
	}

	return err
}
