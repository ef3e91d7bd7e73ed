package validator

import (
	"net/mail"
	"strconv"
	"strings"
	"time"

	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/notification"
	"zentrix-api/internal/domain/user"
	"zentrix-api/internal/interface/api/rest/dto/auth"
	dtoUser "zentrix-api/internal/interface/api/rest/dto/user"
)

const (
	dateLayout     = "2006-01-02"
	maxPasswordLen = 72 // bcrypt limit, in bytes
)

const (
	msgRequired   = "campo requerido"
	msgBadEmail   = "formato de email inválido"
	msgBadRole    = "Rol no reconocido"
	msgBadDate    = "formato esperado AAAA-MM-DD"
	msgBadStatus  = "estado no reconocido"
	msgBadType    = "tipo no reconocido"
	msgLongPass   = "máximo 72 bytes"
	msgBadRange   = "la fecha inicial es posterior a la final"
	msgBadBoolean = "valor booleano inválido"
)

// ParseID parses a positive numeric path id.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = msgRequired
	}
	if r.Password == "" {
		errs["password"] = msgRequired
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	required(errs, "nombre", r.Name)
	required(errs, "apellido", r.LastName)
	required(errs, "documento", r.Document)
	required(errs, "celular", r.Phone)
	required(errs, "username", r.Username)
	email(errs, r.Email)
	password(errs, "password", r.Password)
	role(errs, r.Role)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateUserUpdate(r dtoUser.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	required(errs, "nombre", r.Name)
	required(errs, "apellido", r.LastName)
	required(errs, "documento", r.Document)
	required(errs, "celular", r.Phone)
	email(errs, r.Email)
	role(errs, r.Role)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateRequestReset(r auth.RequestResetRequest) map[string]string {
	if strings.TrimSpace(r.Username) == "" {
		return map[string]string{"username": msgRequired}
	}
	return nil
}

func ValidateResetPassword(r auth.ResetPasswordRequest) map[string]string {
	errs := make(map[string]string)

	required(errs, "token", r.Token)
	password(errs, "newPassword", r.NewPassword)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// InvoiceFilter builds a filter from query values. to covers its whole day.
func InvoiceFilter(number, userName, status, from, to string) (invoice.Filter, map[string]string) {
	errs := make(map[string]string)
	f := invoice.Filter{
		Number:   strings.TrimSpace(number),
		UserName: strings.TrimSpace(userName),
	}

	if s := strings.ToLower(strings.TrimSpace(status)); s != "" {
		if !invoice.Status(s).Valid() {
			errs["status"] = msgBadStatus
		}
		f.Status = invoice.Status(s)
	}
	f.From = date(errs, "from", from)
	f.To = date(errs, "to", to)
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		errs["from"] = msgBadRange
	}

	if len(errs) == 0 {
		return f, nil
	}
	return f, errs
}

func NotificationFilter(message, userName, typ, unread string) (notification.Filter, map[string]string) {
	errs := make(map[string]string)
	f := notification.Filter{
		Message:  strings.TrimSpace(message),
		UserName: strings.TrimSpace(userName),
	}

	if t := strings.ToLower(strings.TrimSpace(typ)); t != "" {
		if !notification.Type(t).Valid() {
			errs["type"] = msgBadType
		}
		f.Type = notification.Type(t)
	}
	if unread != "" {
		b, err := strconv.ParseBool(unread)
		if err != nil {
			errs["unread"] = msgBadBoolean
		}
		f.UnreadOnly = b
	}

	if len(errs) == 0 {
		return f, nil
	}
	return f, errs
}

func required(errs map[string]string, field, v string) {
	if strings.TrimSpace(v) == "" {
		errs[field] = msgRequired
	}
}

func email(errs map[string]string, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		errs["email"] = msgRequired
	} else if _, err := mail.ParseAddress(v); err != nil {
		errs["email"] = msgBadEmail
	}
}

func password(errs map[string]string, field, v string) {
	if strings.TrimSpace(v) == "" {
		errs[field] = msgRequired
	} else if len(v) > maxPasswordLen {
		errs[field] = msgLongPass
	}
}

func role(errs map[string]string, v string) {
	if strings.TrimSpace(v) == "" {
		errs["rol"] = msgRequired
	} else if _, err := user.ParseRole(v); err != nil {
		errs["rol"] = msgBadRole
	}
}

func date(errs map[string]string, field, v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		errs[field] = msgBadDate
		return nil
	}
	return &d
}
