package model

type Settings struct {
	Currency      string        `json:"currency"`
	Theme         string        `json:"theme"`
	Profile       Profile       `json:"profile"`
	Preferences   Preferences   `json:"preferences"`
	Notifications Notifications `json:"notifications"`
	Security      Security      `json:"security"`
}

type Profile struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
}

type Preferences struct {
	CompactMode bool   `json:"compactMode"`
	Language    string `json:"language"`
}

type Notifications struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	Push  bool `json:"push"`
}

type Security struct {
	TwoFactor  bool `json:"twoFactor"`
	AutoLogout bool `json:"autoLogout"`
}

var Languages = []string{"English", "Arabic", "French"}
