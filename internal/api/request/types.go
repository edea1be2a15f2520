package request

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = validator.New()

// IdentityRequest is the input to GET /api/v1/identities/{user_key}
type IdentityRequest struct {
	UserKey     string `validate:"required,max=128"`
	DisplayName string `validate:"max=100"`
}

// IdentityFromHTTP reads the user key path variable and the optional
// display_name query parameter
func IdentityFromHTTP(r *http.Request) (IdentityRequest, error) {
	req := IdentityRequest{
		UserKey:     strings.TrimSpace(mux.Vars(r)["user_key"]),
		DisplayName: strings.TrimSpace(r.URL.Query().Get("display_name")),
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return req, fmt.Errorf("%s failed %q", fieldName(verrs[0].Field()), verrs[0].Tag())
		}
		return req, err
	}
	return req, nil
}

func fieldName(field string) string {
	switch field {
	case "UserKey":
		return "user_key"
	case "DisplayName":
		return "display_name"
	default:
		return field
	}
}
