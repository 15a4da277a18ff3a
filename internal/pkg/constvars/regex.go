package constvars

const (
	RegexEmail                  = `^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`
	RegexUsername               = `^[a-zA-Z0-9_.]+$`
	RegexContainAtLeastOneDigit = `\d`
	// same special-character class the signup form advertises
	RegexContainAtLeastOneSpecialChar = `[!@#$%^&*(),.?":{}|<>]`
	RegexHexColorCode                 = `^#[0-9a-fA-F]{6}$`
	RegexUsernameDisallowedChars      = `[^a-zA-Z0-9_.]+`
)
