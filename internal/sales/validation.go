package sales

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// ValidateRecords checks every record before a bulk write.
func ValidateRecords(v *validator.Validate, records []Record) error {
	for i, record := range records {
		if err := v.Struct(record); err != nil {
			var fields []string
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fieldErr := range verrs {
					fields = append(fields, fmt.Sprintf("%s:%s", fieldErr.Field(), fieldErr.Tag()))
				}
			} else {
				fields = append(fields, err.Error())
			}
			return fmt.Errorf("sales: record %d invalid (%s)", i, strings.Join(fields, ", "))
		}
	}
	return nil
}
