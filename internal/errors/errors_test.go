package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutsynError(t *testing.T) {
	tests := []struct {
		name        string
		errorType   ErrorType
		path        string
		message     string
		cause       error
		expectedMsg string
	}{
		{
			name:        "error with path",
			errorType:   ErrTypeFile,
			path:        "/usr/share/dict/words",
			message:     "file not found",
			expectedMsg: "file error for /usr/share/dict/words: file not found",
		},
		{
			name:        "error without path",
			errorType:   ErrTypeConfig,
			message:     "from layout is required",
			expectedMsg: "config error: from layout is required",
		},
		{
			name:        "error with cause",
			errorType:   ErrTypeDictionary,
			path:        "/words.txt",
			message:     "failed to read line",
			cause:       errors.New("token too long"),
			expectedMsg: "dictionary error for /words.txt: failed to read line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &LayoutsynError{
				Type:    tt.errorType,
				Path:    tt.path,
				Message: tt.message,
				Cause:   tt.cause,
			}

			assert.Equal(t, tt.expectedMsg, err.Error())
			assert.Equal(t, tt.cause, err.Unwrap())
		})
	}
}

func TestLayoutsynErrorIs(t *testing.T) {
	tests := []struct {
		name   string
		err1   *LayoutsynError
		err2   error
		expect bool
	}{
		{
			name:   "same error type",
			err1:   &LayoutsynError{Type: ErrTypeFile},
			err2:   &LayoutsynError{Type: ErrTypeFile},
			expect: true,
		},
		{
			name:   "different error type",
			err1:   &LayoutsynError{Type: ErrTypeFile},
			err2:   &LayoutsynError{Type: ErrTypeLayout},
			expect: false,
		},
		{
			name:   "not a LayoutsynError",
			err1:   &LayoutsynError{Type: ErrTypeFile},
			err2:   errors.New("standard error"),
			expect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.err1.Is(tt.err2))
		})
	}
}

func TestConstructorsSetType(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      *LayoutsynError
		wantType ErrorType
		wantMsg  string
	}{
		{"file", NewFileError("/a", "read failed", cause).LayoutsynError, ErrTypeFile, "read failed"},
		{"file not found", NewFileNotFoundError("/a", cause).LayoutsynError, ErrTypeFile, "file not found"},
		{"file not readable", NewFileNotReadableError("/a", cause).LayoutsynError, ErrTypeFile, "file not readable"},
		{"config", NewConfigError("bad flag", cause).LayoutsynError, ErrTypeConfig, "bad flag"},
		{"config with path", NewConfigErrorWithPath("/c.toml", "bad file", cause).LayoutsynError, ErrTypeConfig, "bad file"},
		{"dictionary", NewDictionaryError("/w", "bad line", cause).LayoutsynError, ErrTypeDictionary, "bad line"},
		{"layout", NewLayoutError("unknown layout", cause).LayoutsynError, ErrTypeLayout, "unknown layout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.err)
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantMsg, tt.err.Message)
			assert.Same(t, cause, tt.err.Cause)
		})
	}
}

func TestErrorsIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading: %w", NewConfigError("min length must not be negative", nil))

	assert.True(t, errors.Is(err, &LayoutsynError{Type: ErrTypeConfig}))
	assert.False(t, errors.Is(err, &LayoutsynError{Type: ErrTypeFile}))

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "min length must not be negative", cfgErr.Message)
}

func TestWrapFileError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, WrapFileError("/test/file.txt", nil))
	})

	t.Run("missing file", func(t *testing.T) {
		_, openErr := os.Open("/definitely/not/here/words.txt")
		require.Error(t, openErr)

		err := WrapFileError("/definitely/not/here/words.txt", openErr)

		var notFound *FileNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "/definitely/not/here/words.txt", notFound.Path)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("permission denied", func(t *testing.T) {
		err := WrapFileError("/root/words.txt", fmt.Errorf("open: %w", fs.ErrPermission))

		var notReadable *FileNotReadableError
		require.True(t, errors.As(err, &notReadable))
		assert.Equal(t, "file not readable", notReadable.Message)
	})

	t.Run("generic error", func(t *testing.T) {
		err := WrapFileError("/test/file.txt", errors.New("generic error"))

		var fileErr *FileError
		require.True(t, errors.As(err, &fileErr))
		assert.Equal(t, ErrTypeFile, fileErr.Type)
		assert.Equal(t, "file operation failed", fileErr.Message)
	})
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "typed error with cause",
			err:  NewFileNotFoundError("/w.txt", errors.New("no such file or directory")),
			want: "file error for /w.txt: file not found: no such file or directory",
		},
		{
			name: "typed error without cause",
			err:  NewConfigError("dictionary is required", nil),
			want: "config error: dictionary is required",
		},
		{
			name: "wrapped typed error",
			err:  fmt.Errorf("run: %w", NewDictionaryError("/w.txt", "failed to read word list", errors.New("token too long"))),
			want: "run: dictionary error for /w.txt: failed to read word list: token too long",
		},
		{
			name: "plain error",
			err:  errors.New("unknown flag: --frm"),
			want: "unknown flag: --frm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err))
		})
	}
}
