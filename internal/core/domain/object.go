package domain

import (
	"encoding/base64"
	"time"
)

// Object is a file held by the mock object storage.
type Object struct {
	Key         string    `json:"key"`
	ContentType string    `json:"contentType"`
	Size        int       `json:"size"`
	Data        []byte    `json:"data"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// DataURL renders the object the way the browser storage mock hands out URLs.
func (o Object) DataURL() string {
	return "data:" + o.ContentType + ";base64," + base64.StdEncoding.EncodeToString(o.Data)
}
