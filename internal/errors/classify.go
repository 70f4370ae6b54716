package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Kind is the user-facing category of a failure.
type Kind string

const (
	KindStorageUnavailable   Kind = "storage_unavailable"
	KindSerializationFailure Kind = "serialization_failure"
	KindNetwork              Kind = "network"
	KindTimeout              Kind = "timeout"
	KindUnauthorized         Kind = "unauthorized"
	KindForbidden            Kind = "forbidden"
	KindNotFound             Kind = "not_found"
	KindServerError          Kind = "server_error"
	KindUnknown              Kind = "unknown"
)

// Sentinels for the two storage kinds. The storage package logs and recovers
// from these itself; they exist so the failures can be classified uniformly.
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrSerialization      = errors.New("serialization failure")
)

var userMessages = map[Kind]string{
	KindStorageUnavailable:   "Depolama şu anda kullanılamıyor. Verileriniz geçici olarak saklanıyor.",
	KindSerializationFailure: "Kayıtlı veri okunamadı. Varsayılan değerler kullanılıyor.",
	KindNetwork:              "Ağ bağlantısı hatası. Lütfen internet bağlantınızı kontrol edin.",
	KindTimeout:              "İstek zaman aşımına uğradı. Lütfen tekrar deneyin.",
	KindUnauthorized:         "Yetkilendirme hatası. Lütfen tekrar giriş yapın.",
	KindForbidden:            "Bu işlem için yetkiniz bulunmuyor.",
	KindNotFound:             "İstenen kaynak bulunamadı.",
	KindServerError:          "Sunucu hatası. Lütfen daha sonra tekrar deneyin.",
	KindUnknown:              "Beklenmeyen bir hata oluştu. Lütfen tekrar deneyin.",
}

// HTTPStatusError is returned by HTTP clients for non-2xx responses.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Classify maps an error to its Kind. Typed errors are checked first, then the
// message text, so errors that crossed a process boundary as strings still
// land in the right bucket.
func Classify(err error) Kind {
	if err == nil {
		return ""
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return kindForStatus(statusErr.StatusCode)
	}

	switch {
	case errors.Is(err, ErrStorageUnavailable):
		return KindStorageUnavailable
	case errors.Is(err, ErrSerialization):
		return KindSerializationFailure
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrPermission):
		return KindForbidden
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout"):
		return KindTimeout
	case strings.Contains(msg, "http 401"):
		return KindUnauthorized
	case strings.Contains(msg, "http 403"):
		return KindForbidden
	case strings.Contains(msg, "http 404"):
		return KindNotFound
	case strings.Contains(msg, "http 500"):
		return KindServerError
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "no such host"):
		return KindNetwork
	}
	return KindUnknown
}

func kindForStatus(code int) Kind {
	switch {
	case code == http.StatusUnauthorized:
		return KindUnauthorized
	case code == http.StatusForbidden:
		return KindForbidden
	case code == http.StatusNotFound:
		return KindNotFound
	case code == http.StatusRequestTimeout, code == http.StatusGatewayTimeout:
		return KindTimeout
	case code >= 500:
		return KindServerError
	default:
		return KindUnknown
	}
}

// UserMessage returns the fixed localized message shown for a Kind.
func UserMessage(kind Kind) string {
	if msg, ok := userMessages[kind]; ok {
		return msg
	}
	return userMessages[KindUnknown]
}

// IsRetryable reports whether a manual retry can help. Client errors that
// will not change on their own (401, 403, 404) are not retried.
func IsRetryable(err error) bool {
	switch Classify(err) {
	case KindUnauthorized, KindForbidden, KindNotFound:
		return false
	}
	return !errors.Is(err, context.Canceled)
}
