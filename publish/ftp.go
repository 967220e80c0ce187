// Package publish pushes rendered pages out of the builder: FTP upload,
// email delivery, and embed snippet generation.
package publish

import (
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// FTPRequest carries the credentials and destination for an FTP push.
// Credentials are used once and never stored.
type FTPRequest struct {
	Host       string `json:"ftp_host"`
	Username   string `json:"ftp_username"`
	Password   string `json:"ftp_password"`
	RemotePath string `json:"remote_path"`
}

// UploadHTML stores the rendered page on the remote FTP server under
// the given filename. Returns the remote location on success.
func UploadHTML(req FTPRequest, filename, htmlContent string) (string, error) {
	addr := req.Host
	if !strings.Contains(addr, ":") {
		addr += ":21"
	}

	conn, err := ftp.Dial(addr, ftp.DialWithTimeout(10*time.Second))
	if err != nil {
		return "", serr.Wrap(err, "failed to connect to FTP server", "host", req.Host)
	}
	defer func() {
		if err := conn.Quit(); err != nil {
			logger.LogErr(err, "failed to close FTP connection", "host", req.Host)
		}
	}()

	if err := conn.Login(req.Username, req.Password); err != nil {
		return "", serr.Wrap(err, "FTP login failed", "host", req.Host)
	}

	if req.RemotePath != "" && req.RemotePath != "/" {
		if err := conn.ChangeDir(req.RemotePath); err != nil {
			return "", serr.Wrap(err, "failed to change remote directory", "path", req.RemotePath)
		}
	}

	if err := conn.Stor(filename, strings.NewReader(htmlContent)); err != nil {
		return "", serr.Wrap(err, "failed to store file", "filename", filename)
	}

	return req.Host + "/" + filename, nil
}
