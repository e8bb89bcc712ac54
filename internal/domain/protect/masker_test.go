package protect

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_IsNotRepresentableInProse(t *testing.T) {
	for _, idx := range []int{0, 7, 10, 123} {
		tok := Token(idx)
		for _, r := range tok {
			assert.Falsef(t, r < unicode.MaxASCII, "token %d contains ASCII rune %q", idx, r)
		}

		assert.True(t, ContainsToken(tok))
	}

	assert.NotEqual(t, Token(1), Token(10))
	assert.False(t, ContainsToken("plain text {x}"))
}

func TestMasker_RoundTrip(t *testing.T) {
	masker := NewMasker(Default())

	inputs := []string{
		"",
		"Error: Please wait",
		"Error: {count} files",
		"Download from https://example.com/watch?v=123",
		"<b>Warning</b> use **bold** and *em* or __under__ and _it_",
		"Run /help now\nthen /settings",
		"Mail admin@example.org or ping @tg_ytdlp",
		"see {name} at /tmp/{x}/file.txt",
		"Version v1.2.3 on 192.168.0.1/24 at 12:30:00",
		"Size 1.5 GB, 1080p, 4K, 25% off, $ 10",
		"Use `ffmpeg -i` with DB_HOST and snake_case_name",
		"✅ Done 🎬 ▶️ next",
		"C:\\Users\\me\\video.mp4 and dir/sub/file",
		"Chrome on Linux via YouTube",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			masked, tokens := masker.Mask(in)
			assert.Equal(t, in, masker.Unmask(masked, tokens))

			for i, tok := range tokens {
				assert.Equal(t, i, tok.Index)
				assert.NotEmpty(t, tok.Fragment)
				assert.NotEmpty(t, tok.Rule)
			}
		})
	}
}

func TestMasker_PlaceholderMaskedFirst(t *testing.T) {
	masker := NewMasker(Default())

	masked, tokens := masker.Mask("Error: {count} files")

	require.Len(t, tokens, 1)
	assert.Equal(t, "{count}", tokens[0].Fragment)
	assert.Equal(t, "placeholders", tokens[0].Rule)
	assert.Equal(t, "Error: "+Token(0)+" files", masked)
}

func TestMasker_EarlierCategoryWins(t *testing.T) {
	masker := NewMasker(Default())

	_, tokens := masker.Mask("**bold_word**")

	require.Len(t, tokens, 1)
	assert.Equal(t, "md_strong", tokens[0].Rule)
	assert.Equal(t, "**bold_word**", tokens[0].Fragment)
}

func TestMasker_SlashCommandKeepsLeadingSpace(t *testing.T) {
	masker := NewMasker(Default())

	masked, tokens := masker.Mask("Send /vid URL")

	require.NotEmpty(t, tokens)
	assert.Equal(t, "/vid URL", tokens[0].Fragment)
	assert.True(t, strings.HasPrefix(masked, "Send "))
}

func TestMasker_SwallowedTokenIsRestored(t *testing.T) {
	masker := NewMasker(Default())

	in := "open /tmp/{dir}/log.txt"
	masked, tokens := masker.Mask(in)

	require.GreaterOrEqual(t, len(tokens), 2)
	assert.Equal(t, "{dir}", tokens[0].Fragment)

	swallowed := false

	for _, tok := range tokens[1:] {
		if strings.Contains(tok.Fragment, Token(0)) {
			swallowed = true
		}
	}

	assert.True(t, swallowed, "expected a later fragment to contain the placeholder token")
	assert.Equal(t, in, masker.Unmask(masked, tokens))
}

func TestMasker_FullyProtectedLeavesNoLetters(t *testing.T) {
	masker := NewMasker(Default())

	masked, tokens := masker.Mask("{user}<br>https://example.com")

	assert.Len(t, tokens, 3)
	assert.False(t, strings.ContainsFunc(masked, func(r rune) bool {
		return r < unicode.MaxASCII && unicode.IsLetter(r)
	}))
}

func TestMasker_UrlSurvivesVerbatim(t *testing.T) {
	masker := NewMasker(Default())

	masked, tokens := masker.Mask("Download from https://example.com/watch?v=123")

	assert.Equal(t, "Download from "+Token(0), masked)
	require.Len(t, tokens, 1)
	assert.Equal(t, "urls", tokens[0].Rule)
}
