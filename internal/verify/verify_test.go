package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValid(t *testing.T) {
	for _, src := range []string{
		"",
		"class A {\n  onClick = (e) => {\n    return e;\n  };\n}\n",
		"class A { static x = 1; #y; render() { return <a onClick={this.onClick} />; } }",
		"export default class extends B { constructor() { super(); } }",
		"const f = async (x) => { for await (const v of x) {} };",
	} {
		assert.NoError(t, Check(context.Background(), []byte(src)), src)
	}
}

func TestCheckInvalid(t *testing.T) {
	err := Check(context.Background(), []byte("class A {\n  a = () => {\n}\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSyntax))

	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.GreaterOrEqual(t, se.Line, 1)
	assert.GreaterOrEqual(t, se.Column, 1)
}

func TestCheckReportsPosition(t *testing.T) {
	err := Check(context.Background(), []byte("let a = 1;\nlet b = );\n"))

	var se *SyntaxError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, 2, se.Line)
}

func TestCheckCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Check(ctx, []byte("x;"))
	assert.ErrorIs(t, err, context.Canceled)
}
