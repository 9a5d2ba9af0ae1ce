package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexLiteral(t *testing.T) {
	items, err := lex("hello")
	require.NoError(t, err)
	assert.Equal(t, []Instruction{Out{Text: []byte("hello")}}, items)
}

func TestLexEscapes(t *testing.T) {
	items, err := lex(`\E[\n\s`)
	require.NoError(t, err)
	assert.Equal(t, []Instruction{Out{Text: []byte{0x1B, '[', '\r', '\n', ' '}}}, items)
}

func TestLexPushParam(t *testing.T) {
	items, err := lex("%p1%p9")
	require.NoError(t, err)
	assert.Equal(t, []Instruction{PushParam{N: 1}, PushParam{N: 9}}, items)
}

func TestLexDelay(t *testing.T) {
	items, err := lex("$<5>")
	require.NoError(t, err)
	assert.Equal(t, []Instruction{Delay{Millis: 5}}, items)

	items, err = lex("$<5*/>")
	require.NoError(t, err)
	assert.Equal(t, []Instruction{Delay{Millis: 5, Proportional: true, Force: true}}, items)
}

func TestLexPrintf(t *testing.T) {
	items, err := lex("%d")
	require.NoError(t, err)
	assert.Equal(t, []Instruction{Print{Format: 'd'}}, items)

	items, err = lex("%03d")
	require.NoError(t, err)
	assert.Equal(t, []Instruction{Print{Format: 'd', Width: 3, HasWidth: true, ZeroPad: true}}, items)

	items, err = lex("%#.3o")
	require.NoError(t, err)
	assert.Equal(t, []Instruction{Print{Format: 'o', Flags: Flags{Hash: true}, Precision: 3, HasPrecision: true}}, items)
}

func TestLexVars(t *testing.T) {
	items, err := lex("%PA%ga")
	require.NoError(t, err)
	assert.Equal(t, []Instruction{SetVar{Name: 'A'}, PushVar{Name: 'a'}}, items)
}

func TestLexCharConstant(t *testing.T) {
	items, err := lex(`%'A'`)
	require.NoError(t, err)
	assert.Equal(t, []Instruction{Constant{Value: 'A'}}, items)

	items, err = lex(`%'^A'`)
	require.NoError(t, err)
	assert.Equal(t, []Instruction{Constant{Value: 1}}, items)
}

func TestLexIntConstant(t *testing.T) {
	items, err := lex("%{65}")
	require.NoError(t, err)
	assert.Equal(t, []Instruction{Constant{Value: 65}}, items)
}

func TestLexSingleOps(t *testing.T) {
	items, err := lex("%i%l%+%=%?%t%e%;%%")
	require.NoError(t, err)
	assert.Equal(t, []Instruction{
		ParamInc{},
		Strlen{},
		BinOp{Add},
		BinOp{CmpEqual},
		markerBeginIf{},
		markerThen{},
		markerElseIf{},
		markerEndIf{},
		Out{Text: []byte("%")},
	}, items)
}

func TestLexMixed(t *testing.T) {
	items, err := lex(`\E[%i%p1%d;%p2%dH`)
	require.NoError(t, err)
	assert.Equal(t, []Instruction{
		Out{Text: []byte{0x1B, '['}},
		ParamInc{},
		PushParam{N: 1},
		Print{Format: 'd'},
		Out{Text: []byte(";")},
		PushParam{N: 2},
		Print{Format: 'd'},
		Out{Text: []byte("H")},
	}, items)
}
