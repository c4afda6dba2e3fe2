package models

// AppSettings is the singleton branding and payment configuration,
// overwritten wholesale by staff edits.
type AppSettings struct {
	AppName   string `json:"appName"`
	Logo      string `json:"logo"`
	Helpline  string `json:"helpline"`
	Copyright string `json:"copyright"`
	UpiID     string `json:"upiId"`
	QRCodeURL string `json:"qrCodeUrl"`
}

// Theme is the singleton set of color tokens used by the presentation
// layer.
type Theme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}
