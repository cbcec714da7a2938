package usecasecontract

import "time"

// IAppLogger is the logging surface used by use cases.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// IConfigProvider exposes the settings use cases depend on.
type IConfigProvider interface {
	GetAssetFolder() string
	GetAssetTimeout() time.Duration
	GetVideoChunkSize() int
	GetDefaultAvatarURL() string
}

// IValidator validates user supplied account fields.
type IValidator interface {
	ValidateEmail(email string) error
	ValidateRegistration(fullName, email, password string) error
	ValidateFullName(fullName string) error
}
