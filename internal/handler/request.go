package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hitoshi/hexaware/internal/model"
)

// maxRequestBodyBytes はリクエストボディの最大サイズ。
const maxRequestBodyBytes = 1 << 20

// registerRequest は POST /register のリクエストボディ。
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validate は必須フィールドが空でないことを検証する。
func (req registerRequest) validate() error {
	return requireFields(
		field{"name", req.Name},
		field{"email", req.Email},
		field{"password", req.Password},
	)
}

// loginRequest は POST /login のリクエストボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validate は必須フィールドが空でないことを検証する。
func (req loginRequest) validate() error {
	return requireFields(
		field{"email", req.Email},
		field{"password", req.Password},
	)
}

// accountResponse は登録・ログイン成功時のレスポンスボディ。
// userには公開フィールドのみを含める。
type accountResponse struct {
	Message string           `json:"message"`
	User    model.PublicUser `json:"user"`
}

type field struct {
	name  string
	value string
}

func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return model.NewInvalidRequestError(fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
	}
	return nil
}

// decodeJSONBody はリクエストボディを1つのJSONオブジェクトとしてdstにデコードする。
// 不正なJSON、型の不一致、サイズ超過、後続データはすべて検証エラーとして返す。
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &maxBytesErr):
			return model.NewInvalidRequestError("Request body too large")
		case errors.As(err, &typeErr):
			if typeErr.Field != "" {
				return model.NewInvalidRequestError(fmt.Sprintf("Field %q must be a %s", typeErr.Field, typeErr.Type))
			}
			return model.NewInvalidRequestError("Request body must be a JSON object")
		case errors.Is(err, io.EOF):
			return model.NewInvalidRequestError("Request body is required")
		default:
			return model.NewInvalidRequestError("Request body is not valid JSON")
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return model.NewInvalidRequestError("Request body must contain a single JSON object")
	}

	return nil
}
