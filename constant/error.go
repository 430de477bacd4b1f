package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidID
	ErrIdentityNotFound
	ErrIdentityInactive
	ErrConsentRequired
	ErrTournamentNotFound
	ErrRegistrationClosed
	ErrTournamentFull
	ErrAlreadyRegistered
	ErrInvalidCredential
	ErrGateway
	ErrTooManyRequests
	ErrForbidden
	ErrRouteNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "Internal server error",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "Validation failed",
	ErrUnauthorize:        "unauthorize request",
	ErrInvalidID:          "Invalid tournament ID",
	ErrIdentityNotFound:   "User not found. Please verify your phone number first.",
	ErrIdentityInactive:   "Account is deactivated",
	ErrConsentRequired:    "Please complete your profile and give consent first.",
	ErrTournamentNotFound: "Tournament not found",
	ErrRegistrationClosed: "Registration is not available for this tournament",
	ErrTournamentFull:     "Tournament is full",
	ErrAlreadyRegistered:  "You are already registered for this tournament",
	ErrInvalidCredential:  "Invalid or expired OTP",
	ErrGateway:            "Failed to send OTP. Please try again.",
	ErrTooManyRequests:    "Too many requests. Please try again later.",
	ErrForbidden:          "forbidden request",
	ErrRouteNotFound:      "Route not found",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrInvalidID:          http.StatusBadRequest,
	ErrIdentityNotFound:   http.StatusNotFound,
	ErrIdentityInactive:   http.StatusForbidden,
	ErrConsentRequired:    http.StatusForbidden,
	ErrTournamentNotFound: http.StatusNotFound,
	ErrRegistrationClosed: http.StatusBadRequest,
	ErrTournamentFull:     http.StatusConflict,
	ErrAlreadyRegistered:  http.StatusConflict,
	ErrInvalidCredential:  http.StatusBadRequest,
	ErrGateway:            http.StatusBadGateway,
	ErrTooManyRequests:    http.StatusTooManyRequests,
	ErrForbidden:          http.StatusForbidden,
	ErrRouteNotFound:      http.StatusNotFound,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrInvalidID:          "0005",
	ErrIdentityNotFound:   "0006",
	ErrIdentityInactive:   "0007",
	ErrConsentRequired:    "0008",
	ErrTournamentNotFound: "0009",
	ErrRegistrationClosed: "0010",
	ErrTournamentFull:     "0011",
	ErrAlreadyRegistered:  "0012",
	ErrInvalidCredential:  "0013",
	ErrGateway:            "0014",
	ErrTooManyRequests:    "0015",
	ErrForbidden:          "0016",
	ErrRouteNotFound:      "0017",
}
