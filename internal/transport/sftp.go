package transport

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/fhofer/invoice-assistant/internal/common"
)

// Uploader stores a local file at a named remote location.
type Uploader interface {
	Upload(localPath, remotePath string) error
}

// Config holds the connection settings for the fixed remote host. Credentials
// come from deployment configuration, never from code.
type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	KnownHosts  string // known_hosts file; empty skips host-key verification (accepted risk)
	DialTimeout time.Duration
}

// SFTPUploader transfers files over a password-authenticated SFTP session. A
// fresh connection is opened per upload; sessions are short-lived and the tool
// processes one document at a time.
type SFTPUploader struct {
	cfg    Config
	logger *slog.Logger
}

func NewSFTPUploader(cfg Config, logger *slog.Logger) *SFTPUploader {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Port <= 0 {
		cfg.Port = 22
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 10 * time.Second
	}
	return &SFTPUploader{cfg: cfg, logger: logger}
}

func (u *SFTPUploader) Upload(localPath, remotePath string) error {
	if u.cfg.Host == "" || u.cfg.Username == "" {
		return common.NewAppError("SFTP_CONFIG", "SFTP_HOST and SFTP_USERNAME are required", common.ErrTransport)
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if u.cfg.KnownHosts != "" {
		cb, err := knownhosts.New(u.cfg.KnownHosts)
		if err != nil {
			return common.NewAppError("SFTP_CONFIG",
				fmt.Sprintf("load known_hosts %s", u.cfg.KnownHosts), fmt.Errorf("%w: %v", common.ErrTransport, err))
		}
		hostKeyCallback = cb
	}

	clientCfg := &ssh.ClientConfig{
		User:            u.cfg.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(u.cfg.Password)},
		HostKeyCallback: hostKeyCallback,
		Timeout:         u.cfg.DialTimeout,
	}

	addr := net.JoinHostPort(u.cfg.Host, strconv.Itoa(u.cfg.Port))
	start := time.Now()

	conn, err := ssh.Dial("tcp", addr, clientCfg)
	if err != nil {
		return common.NewAppError("SFTP_DIAL", addr, fmt.Errorf("%w: %v", common.ErrTransport, err))
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			u.logger.Warn("ssh connection close error", "error", cerr)
		}
	}()

	client, err := sftp.NewClient(conn)
	if err != nil {
		return common.NewAppError("SFTP_SESSION", addr, fmt.Errorf("%w: %v", common.ErrTransport, err))
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			u.logger.Warn("sftp client close error", "error", cerr)
		}
	}()

	src, err := os.Open(localPath)
	if err != nil {
		return common.NewAppError("SFTP_UPLOAD", fmt.Sprintf("open %s", localPath), fmt.Errorf("%w: %v", common.ErrTransport, err))
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			u.logger.Warn("local file close error", "path", localPath, "error", cerr)
		}
	}()

	dst, err := client.Create(remotePath)
	if err != nil {
		return common.NewAppError("SFTP_UPLOAD", fmt.Sprintf("create %s", remotePath), fmt.Errorf("%w: %v", common.ErrTransport, err))
	}

	n, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return common.NewAppError("SFTP_UPLOAD", fmt.Sprintf("write %s", remotePath), fmt.Errorf("%w: %v", common.ErrTransport, err))
	}

	u.logger.Info("upload complete", "local", localPath, "remote", remotePath,
		"bytes", n, "elapsed_ms", time.Since(start).Milliseconds())
	return nil
}
