package main

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/go-toolkit/pkg/hashing"
	"github.com/cecil-the-coder/go-toolkit/pkg/serialize"
	"github.com/cecil-the-coder/go-toolkit/pkg/testutil"
)

func runCmd(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHashCmd(t *testing.T) {
	path := testutil.WriteTempFile(t, "hello.txt", []byte("hello world"))

	out, _, err := runCmd(t, nil, "hash", path)
	require.NoError(t, err)
	assert.Equal(t, hashing.SHA256Hex("hello world")+"  "+path+"\n", out)

	_, _, err = runCmd(t, nil, "hash", filepath.Dir(path))
	testutil.AssertErrorIs(t, err, hashing.ErrExpectedFile)
}

func TestHMACCmd(t *testing.T) {
	out, _, err := runCmd(t, nil, "hmac", "key", "The quick brown fox jumps over the lazy dog")
	require.NoError(t, err)
	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8\n", out)
}

func TestUUIDCmd(t *testing.T) {
	out, _, err := runCmd(t, nil, "uuid", "-n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	v4 := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	for _, line := range lines {
		assert.Regexp(t, v4, line)
	}
}

func TestMsgIDCmd(t *testing.T) {
	out, _, err := runCmd(t, nil, "msgid", "--prefix", "evt_")
	require.NoError(t, err)
	assert.Regexp(t, `^evt_[0-9a-z]+-[0-9a-f]{8}\n$`, out)
}

func TestBytesCmd(t *testing.T) {
	out, _, err := runCmd(t, nil, "bytes", "1536")
	require.NoError(t, err)
	assert.Equal(t, "1.50 KB\n", out)

	_, _, err = runCmd(t, nil, "bytes", "abc")
	assert.Error(t, err)
}

func TestTimeAgoCmdUsesConfigLocale(t *testing.T) {
	cfgPath := testutil.WriteTempFile(t, "config.yaml", []byte("format:\n  locale: id\n"))

	out, _, err := runCmd(t, nil, "--config", cfgPath, "timeago", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "tahun")
}

func TestGzipRoundTripCmd(t *testing.T) {
	compressed, _, err := runCmd(t, strings.NewReader("compress me please"), "gzip", "-l", "9")
	require.NoError(t, err)

	plain, err := serialize.GzipDecompress([]byte(compressed))
	require.NoError(t, err)
	assert.Equal(t, "compress me please", string(plain))

	out, _, err := runCmd(t, strings.NewReader(compressed), "gunzip")
	require.NoError(t, err)
	assert.Equal(t, "compress me please", out)
}

func TestDownloadCmd(t *testing.T) {
	server := testutil.NewStaticServer(t, map[string]testutil.Route{
		"/file.txt": {Body: []byte("remote content")},
	})

	out, _, err := runCmd(t, nil, "download", server.URLFor("/file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "remote content", out)

	dest := filepath.Join(t.TempDir(), "sub", "file.txt")
	_, stderr, err := runCmd(t, nil, "download", server.URLFor("/file.txt"), "-o", dest)
	require.NoError(t, err)
	testutil.AssertFileContent(t, dest, []byte("remote content"))
	assert.Contains(t, stderr, dest)
}

func TestDownloadCmdRetriesWithConfigPolicy(t *testing.T) {
	server := testutil.NewStaticServer(t, map[string]testutil.Route{
		"/down": {Status: http.StatusServiceUnavailable},
	})
	cfgPath := testutil.WriteTempFile(t, "config.yaml", []byte("retry:\n  attempts: 4\n  delay: 1ms\n"))

	_, _, err := runCmd(t, nil, "--config", cfgPath, "download", server.URLFor("/down"))
	require.Error(t, err)
	assert.Equal(t, "HTTP 503", err.Error())
	assert.Equal(t, int64(4), server.Hits())
}

func TestDownloadCmdRejectsNonHTTP(t *testing.T) {
	_, _, err := runCmd(t, nil, "download", "ftp://example.com/file")
	assert.Error(t, err)
}

func TestExecCmd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell syntax")
	}
	out, stderr, err := runCmd(t, strings.NewReader("in"), "exec", "cat; echo warn 1>&2")
	require.NoError(t, err)
	assert.Equal(t, "in", out)
	assert.Equal(t, "warn\n", stderr)

	_, _, err = runCmd(t, nil, "exec", "exit 2")
	assert.Error(t, err)
}

func TestSysinfoCmd(t *testing.T) {
	out, _, err := runCmd(t, nil, "sysinfo")
	require.NoError(t, err)
	for _, key := range []string{"platform", "arch", "cpus", "totalmem", "freemem", "uptime"} {
		assert.Contains(t, out, `"`+key+`"`)
	}
}

func TestMissingConfig(t *testing.T) {
	_, _, err := runCmd(t, nil, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "uuid")
	assert.Error(t, err)
}
