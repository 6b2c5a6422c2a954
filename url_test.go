package readview_test

import (
	"net"
	"testing"

	"github.com/fwojciec/readview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	t.Parallel()

	t.Run("accepts public URLs", func(t *testing.T) {
		t.Parallel()

		valid := []string{
			"http://example.com/article",
			"https://example.com/",
			"https://news.example.org/2024/essay?page=2",
			"http://93.184.216.34/page",
		}
		for _, u := range valid {
			assert.NoError(t, readview.ValidateURL(u), u)
		}
	})

	t.Run("rejects disallowed schemes", func(t *testing.T) {
		t.Parallel()

		tests := []string{
			"file:///etc/passwd",
			"ftp://example.com/file",
			"data:text/html,<script>alert(1)</script>",
			"gopher://example.com/",
			"javascript:alert(1)",
		}
		for _, u := range tests {
			err := readview.ValidateURL(u)
			require.Error(t, err, u)
			assert.Equal(t, readview.EINVALID, readview.ErrorCode(err), u)
		}
	})

	t.Run("rejects private and loopback targets", func(t *testing.T) {
		t.Parallel()

		tests := []string{
			"http://localhost/admin",
			"http://localhost:8080/",
			"http://127.0.0.1/",
			"http://127.8.8.8/",
			"http://[::1]/",
			"http://10.0.0.5/",
			"http://172.16.0.1/",
			"http://172.31.255.255/",
			"http://192.168.1.10/",
			"http://169.254.169.254/latest/meta-data/",
			"http://100.64.1.1/",
			"http://[fe80::1]/",
			"http://[fd00::1]/",
			"http://[::ffff:10.0.0.1]/",
			"http://router.local/",
			"http://db.internal/status",
		}
		for _, u := range tests {
			err := readview.ValidateURL(u)
			require.Error(t, err, u)
			assert.Equal(t, readview.EINVALID, readview.ErrorCode(err), u)
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()

		tests := []string{
			"",
			"not a url",
			"://missing-scheme",
			"http://",
		}
		for _, u := range tests {
			assert.Error(t, readview.ValidateURL(u), u)
		}
	})
}

func TestIsPrivateIP(t *testing.T) {
	t.Parallel()

	private := []string{
		"127.0.0.1", "10.1.2.3", "172.20.0.1", "192.168.0.1",
		"169.254.1.1", "100.64.0.1", "::1", "fe80::1", "fc00::1",
		"::ffff:192.168.1.1", "0.0.0.0",
	}
	for _, s := range private {
		ip := net.ParseIP(s)
		require.NotNil(t, ip, s)
		assert.True(t, readview.IsPrivateIP(ip), s)
	}

	public := []string{"93.184.216.34", "8.8.8.8", "2606:2800:220:1::1"}
	for _, s := range public {
		ip := net.ParseIP(s)
		require.NotNil(t, ip, s)
		assert.False(t, readview.IsPrivateIP(ip), s)
	}
}

func TestIsDemoURL(t *testing.T) {
	t.Parallel()

	assert.True(t, readview.IsDemoURL("https://readview.example/anything"))
	assert.True(t, readview.IsDemoURL("https://docs.readview.example/page"))
	assert.True(t, readview.IsDemoURL("https://example.com/DEMO-page"))
	assert.True(t, readview.IsDemoURL("https://demo.example.com/"))

	assert.False(t, readview.IsDemoURL("https://example.com/article"))
	assert.False(t, readview.IsDemoURL("https://readview.example.com/"))
}
