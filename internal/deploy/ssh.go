package deploy

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"os"
	"strconv"

	"github.com/bornholm/go-x/slogx"
	"github.com/hettlage/superlists/internal/config"
	"github.com/pkg/errors"
	"github.com/pkg/sftp"
	"github.com/spf13/afero"
	"github.com/spf13/afero/sftpfs"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// IgnoreHostKey disables host key verification when used as host key setting.
const IgnoreHostKey = "insecure-ignore"

// SSHRemote runs commands in dedicated SSH sessions and accesses files with
// SFTP over the same connection.
type SSHRemote struct {
	client     *ssh.Client
	sftpClient *sftp.Client
	fs         afero.Fs
}

// Run implements Remote.
func (r *SSHRemote) Run(ctx context.Context, cmd string) (string, error) {
	session, err := r.client.NewSession()
	if err != nil {
		return "", errors.Wrap(err, "could not open ssh session")
	}

	defer session.Close()

	var stdout, stderr bytes.Buffer

	session.Stdout = &stdout
	session.Stderr = &stderr

	done := make(chan error, 1)

	go func() {
		done <- session.Run(cmd)
	}()

	select {
	case <-ctx.Done():
		if err := session.Signal(ssh.SIGTERM); err != nil {
			slog.DebugContext(ctx, "could not signal remote command", slogx.Error(err))
		}

		return "", errors.WithStack(ctx.Err())

	case err := <-done:
		if err != nil {
			var exitErr *ssh.ExitError
			if errors.As(err, &exitErr) {
				return stdout.String(), errors.WithStack(NewCommandError(cmd, exitErr.ExitStatus(), stderr.String()))
			}

			return stdout.String(), errors.Wrapf(err, "could not run command '%s'", cmd)
		}
	}

	return stdout.String(), nil
}

// Fs implements Remote.
func (r *SSHRemote) Fs() afero.Fs {
	return r.fs
}

func (r *SSHRemote) Close() error {
	if err := r.sftpClient.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return errors.WithStack(err)
	}

	if err := r.client.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return errors.WithStack(err)
	}

	return nil
}

var _ Remote = &SSHRemote{}

func DialSSH(ctx context.Context, addr string, config *ssh.ClientConfig) (*SSHRemote, error) {
	dialer := &net.Dialer{Timeout: config.Timeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "could not connect to '%s'", addr)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		conn.Close()
		return nil, errors.Wrapf(err, "could not establish ssh connection with '%s'", addr)
	}

	client := ssh.NewClient(sshConn, chans, reqs)

	sftpClient, err := sftp.NewClient(client)
	if err != nil {
		client.Close()
		return nil, errors.Wrap(err, "could not open sftp session")
	}

	return &SSHRemote{
		client:     client,
		sftpClient: sftpClient,
		fs:         sftpfs.New(sftpClient),
	}, nil
}

// DialSSHFromConfig connects to the deployment target as the remote user.
func DialSSHFromConfig(ctx context.Context, conf *config.Deploy) (*SSHRemote, error) {
	clientConfig, err := NewSSHClientConfig(conf.RemoteUser, conf.SSH)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	addr := net.JoinHostPort(conf.Server, strconv.Itoa(conf.SSH.Port))

	remote, err := DialSSH(ctx, addr, clientConfig)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return remote, nil
}

type ConfigureFunc func(conf config.DeploySSH, clientConfig *ssh.ClientConfig) error

func NewSSHClientConfig(user string, conf config.DeploySSH) (*ssh.ClientConfig, error) {
	clientConfig := &ssh.ClientConfig{
		User: user,
	}

	configurations := []ConfigureFunc{
		configureAuthMethods,
		configureTimeout,
		configureHostKeyCallback,
	}

	for _, configure := range configurations {
		if err := configure(conf, clientConfig); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	return clientConfig, nil
}

func configureAuthMethods(conf config.DeploySSH, clientConfig *ssh.ClientConfig) error {
	authMethods := make([]ssh.AuthMethod, 0)

	if conf.PrivateKey != "" {
		rawPrivateKey, err := os.ReadFile(conf.PrivateKey)
		if err != nil {
			return errors.Wrapf(err, "could not read ssh private key '%s'", conf.PrivateKey)
		}

		var signer ssh.Signer
		if conf.PrivateKeyPassphrase != "" {
			signer, err = ssh.ParsePrivateKeyWithPassphrase(rawPrivateKey, []byte(conf.PrivateKeyPassphrase))
		} else {
			signer, err = ssh.ParsePrivateKey(rawPrivateKey)
		}
		if err != nil {
			return errors.Wrapf(err, "could not parse ssh private key '%s'", conf.PrivateKey)
		}

		authMethods = append(authMethods, ssh.PublicKeys(signer))
	}

	if conf.Password != "" {
		authMethods = append(authMethods, ssh.Password(conf.Password))
	}

	if len(authMethods) == 0 {
		return errors.New("no ssh authentication method configured")
	}

	clientConfig.Auth = authMethods

	return nil
}

func configureTimeout(conf config.DeploySSH, clientConfig *ssh.ClientConfig) error {
	clientConfig.Timeout = conf.Timeout
	return nil
}

func configureHostKeyCallback(conf config.DeploySSH, clientConfig *ssh.ClientConfig) error {
	if conf.HostKey == "" {
		return errors.New("host key setting is required")
	}

	if conf.HostKey == IgnoreHostKey {
		clientConfig.HostKeyCallback = ssh.InsecureIgnoreHostKey()
		return nil
	}

	callback, err := knownhosts.New(conf.HostKey)
	if err == nil {
		clientConfig.HostKeyCallback = callback
		return nil
	}

	// Not a known_hosts file, try a single pinned public key
	rawPubKey, readErr := os.ReadFile(conf.HostKey)
	if readErr != nil {
		return errors.Wrapf(readErr, "could not read host key file '%s'", conf.HostKey)
	}

	pubKey, _, _, _, parseErr := ssh.ParseAuthorizedKey(rawPubKey)
	if parseErr != nil {
		return errors.Wrapf(parseErr, "could not parse host key file '%s'", conf.HostKey)
	}

	clientConfig.HostKeyCallback = ssh.FixedHostKey(pubKey)

	return nil
}
