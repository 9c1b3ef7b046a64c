package bind

import (
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "benchmarks/internal/platform/errors"
)

type query struct {
	Period string `json:"period" validate:"required"`
	Limit  int    `json:"limit,omitempty" validate:"min=0,max=50"`
}

func post(body string) *stdhttp.Request {
	return httptest.NewRequest(stdhttp.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		code  perr.ErrorCode
		field string
	}{
		{"ok", `{"period":"current_week","limit":3}`, perr.ErrorCodeUnknown, ""},
		{"invalid json", `{`, perr.ErrorCodeJSON, ""},
		{"unknown field", `{"period":"x","extra":1}`, perr.ErrorCodeJSON, ""},
		{"trailing data", `{"period":"x"}{}`, perr.ErrorCodeJSON, ""},
		{"missing required", `{}`, perr.ErrorCodeValidation, "period"},
		{"over max", `{"period":"x","limit":99}`, perr.ErrorCodeValidation, "limit"},
		{"empty body validates zero value", ``, perr.ErrorCodeValidation, "period"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseJSON[query](post(tc.body))
			if tc.code == perr.ErrorCodeUnknown {
				if err != nil {
					t.Fatalf("unexpected: %v", err)
				}
				if got.Period != "current_week" || got.Limit != 3 {
					t.Fatalf("got %+v", got)
				}
				return
			}
			if perr.CodeOf(err) != tc.code {
				t.Fatalf("code = %v want %v (%v)", perr.CodeOf(err), tc.code, err)
			}
			if e, ok := perr.As(err); ok && e.Field() != tc.field {
				t.Fatalf("field = %q want %q", e.Field(), tc.field)
			}
		})
	}
}

func TestParseJSON_Options(t *testing.T) {
	_, err := ParseJSON[query](post(``), JSONOptions{AllowEmptyBody: false})
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("empty body: %v", err)
	}

	_, err = ParseJSON[query](post(`{"period":"current_year"}`), JSONOptions{MaxBytes: 4})
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("oversized body: %v", err)
	}

	got, err := ParseJSON[query](post(`{"period":"all_time","extra":true}`), JSONOptions{})
	if err != nil || got.Period != "all_time" {
		t.Fatalf("lenient decode: %+v %v", got, err)
	}
}

func TestParseJSON_NonStructPayload(t *testing.T) {
	got, err := ParseJSON[[]string](post(`["a","b"]`))
	if err != nil || len(got) != 2 {
		t.Fatalf("got %v %v", got, err)
	}
}

func TestRegisterValidation(t *testing.T) {
	err := RegisterValidation("weekday", "{0} must be a weekday name", func(fl FieldLevel) bool {
		return strings.HasSuffix(fl.Field().String(), "day")
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	type in struct {
		Day string `json:"day" validate:"weekday"`
	}
	_, err = ParseJSON[in](post(`{"day":"someday"}`))
	if err != nil {
		t.Fatalf("valid: %v", err)
	}
	_, err = ParseJSON[in](post(`{"day":"never"}`))
	e, ok := perr.As(err)
	if !ok || e.Message() != "day must be a weekday name" {
		t.Fatalf("got %v", err)
	}
}

func TestValidationFieldAndMessage_Nil(t *testing.T) {
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("got %q %q", f, m)
	}
}

func TestValidate(t *testing.T) {
	type q struct {
		Limit int `json:"limit" validate:"omitempty,max=5"`
	}
	if err := Validate(q{Limit: 3}); err != nil {
		t.Fatalf("valid: %v", err)
	}
	e, ok := perr.As(Validate(q{Limit: 9}))
	if !ok || e.Code() != perr.ErrorCodeValidation || e.Field() != "limit" {
		t.Fatalf("got %v", e)
	}
	if err := Validate(42); err != nil {
		t.Fatalf("non-struct: %v", err)
	}
}
