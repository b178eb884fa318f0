package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexContainAtLeastOneDigit       = `.*\d.*`
	RegexEmail                        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexAlphanumeric                 = `^[a-zA-Z0-9]+$`
	RegexCourseCode                   = `^[A-Z]{3}\d{3}[A-Z]?$`
	RegexClockHHMM                    = `^\d{2}:\d{2}$`
	RegexHexColorCode                 = `^#?([a-fA-F0-9]{6}|[a-fA-F0-9]{3})$`
)
