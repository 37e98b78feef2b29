package errorx

import (
	"errors"
	"net/http"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeDBError, "query units")

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if got := err.Error(); got != "query units: connection refused" {
		t.Errorf("Error() = %q", got)
	}
	if GetCode(err) != CodeDBError {
		t.Errorf("GetCode() = %d, want %d", GetCode(err), CodeDBError)
	}
}

func TestGetCodeDefaultsToInternal(t *testing.T) {
	if got := GetCode(errors.New("plain")); got != CodeInternal {
		t.Errorf("GetCode(plain) = %d, want %d", got, CodeInternal)
	}
}

func TestHTTPStatusTable(t *testing.T) {
	cases := []struct {
		code int
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeInvalidParam, http.StatusBadRequest},
		{CodeInvalidStatus, http.StatusBadRequest},
		{CodeUnitUnavailable, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeQueryFailed, http.StatusInternalServerError},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(New(c.code, "x")); got != c.want {
			t.Errorf("HTTPStatus(code %d) = %d, want %d", c.code, got, c.want)
		}
	}

	if got := HTTPStatus(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("HTTPStatus(plain) = %d, want 500", got)
	}
}
