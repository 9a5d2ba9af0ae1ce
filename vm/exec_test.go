package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/terminfo/lang"
)

func TestExecOutLiteral(t *testing.T) {
	m := NewMachine()
	e := NewExecution(m, []lang.Instruction{lang.Out{Text: []byte("hi")}}, 0)
	out, err := e.Run(0)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(out))
}

func TestExecPushParamPrint(t *testing.T) {
	m := NewMachine()
	code := []lang.Instruction{
		lang.PushParam{N: 1},
		lang.Print{Format: 'd'},
	}
	e := NewExecution(m, code, 1)
	out, err := e.Run(0, Int(0))
	require.NoError(t, err)
	assert.Equal(t, "0", string(out))
}

func TestExecBeginRangeError(t *testing.T) {
	m := NewMachine()
	e := NewExecution(m, []lang.Instruction{lang.PushParam{N: 2}}, 2)
	_, err := e.Run(0, Int(1))
	require.Error(t, err)
	var re RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 2, re.Want)
	assert.Equal(t, 1, re.Got)
}

func TestExecStackUnderflow(t *testing.T) {
	m := NewMachine()
	e := NewExecution(m, []lang.Instruction{lang.Print{Format: 'd'}}, 0)
	_, err := e.Run(0)
	require.Error(t, err)
	var rte RuntimeError
	require.ErrorAs(t, err, &rte)
}

func TestExecTypeMismatch(t *testing.T) {
	m := NewMachine()
	code := []lang.Instruction{lang.PushParam{N: 1}, lang.Strlen{}}
	e := NewExecution(m, code, 1)
	_, err := e.Run(0, Int(5))
	require.Error(t, err)
	var te TypeError
	require.ErrorAs(t, err, &te)
}

func TestExecJumpZeroAndJump(t *testing.T) {
	// %?%p1%t yes%e no%;
	code := []lang.Instruction{
		lang.PushParam{N: 1},
		lang.JumpZero{Delta: 2},
		lang.Out{Text: []byte(" yes")},
		lang.Jump{Delta: 1},
		lang.Out{Text: []byte(" no")},
	}
	m := NewMachine()

	e := NewExecution(m, code, 1)
	out, err := e.Run(0, Int(1))
	require.NoError(t, err)
	assert.Equal(t, " yes", string(out))

	out, err = e.Run(0, Int(0))
	require.NoError(t, err)
	assert.Equal(t, " no", string(out))
}

func TestExecParamInc(t *testing.T) {
	code := []lang.Instruction{
		lang.ParamInc{},
		lang.PushParam{N: 1},
		lang.Print{Format: 'd'},
		lang.Out{Text: []byte(";")},
		lang.PushParam{N: 2},
		lang.Print{Format: 'd'},
	}
	m := NewMachine()
	e := NewExecution(m, code, 2)
	out, err := e.Run(0, Int(5), Int(10))
	require.NoError(t, err)
	assert.Equal(t, "6;11", string(out))
}

func TestExecStaticRegisterPersistsAcrossExecutions(t *testing.T) {
	m := NewMachine()

	setCode := []lang.Instruction{
		lang.Constant{Value: 65},
		lang.SetVar{Name: 'A'},
		lang.PushVar{Name: 'A'},
		lang.Print{Format: 'c'},
	}
	e1 := NewExecution(m, setCode, 0)
	out, err := e1.Run(0)
	require.NoError(t, err)
	assert.Equal(t, "A", string(out))

	getCode := []lang.Instruction{
		lang.PushVar{Name: 'A'},
		lang.Print{Format: 'c'},
	}
	e2 := NewExecution(m, getCode, 0)
	out, err = e2.Run(0)
	require.NoError(t, err)
	assert.Equal(t, "A", string(out), "static register must persist across different Executions on the same Machine")
}

func TestExecDynamicRegisterDoesNotPersist(t *testing.T) {
	m := NewMachine()
	code := []lang.Instruction{
		lang.Constant{Value: 42},
		lang.SetVar{Name: 'a'},
	}
	e := NewExecution(m, code, 0)
	_, err := e.Run(0)
	require.NoError(t, err)

	readCode := []lang.Instruction{
		lang.PushVar{Name: 'a'},
		lang.Print{Format: 'd'},
	}
	e2 := NewExecution(m, readCode, 0)
	out, err := e2.Run(0)
	require.NoError(t, err)
	assert.Equal(t, "0", string(out))
}

func TestExecDelayForced(t *testing.T) {
	var waited []int
	m := NewMachine()
	m.DelayFunc = func(ms int) { waited = append(waited, ms) }
	m.DirectOutput = true
	m.DisableDelays = true

	code := []lang.Instruction{lang.Delay{Millis: 20, Force: true}}
	e := NewExecution(m, code, 0)
	_, err := e.Run(3)
	require.NoError(t, err)
	assert.Equal(t, []int{20}, waited)
}

func TestExecDelaySuppressedWhenDisabled(t *testing.T) {
	var waited []int
	m := NewMachine()
	m.DelayFunc = func(ms int) { waited = append(waited, ms) }
	m.DirectOutput = true
	m.DisableDelays = true

	code := []lang.Instruction{lang.Delay{Millis: 20}}
	e := NewExecution(m, code, 0)
	_, err := e.Run(3)
	require.NoError(t, err)
	assert.Empty(t, waited)
}

func TestExecDelayProportional(t *testing.T) {
	var waited []int
	m := NewMachine()
	m.DelayFunc = func(ms int) { waited = append(waited, ms) }
	m.DirectOutput = true

	code := []lang.Instruction{lang.Delay{Millis: 5, Proportional: true}}
	e := NewExecution(m, code, 0)
	_, err := e.Run(4)
	require.NoError(t, err)
	assert.Equal(t, []int{20}, waited)
}

func TestExecFloorDivision(t *testing.T) {
	code := []lang.Instruction{
		lang.Constant{Value: -7},
		lang.Constant{Value: 2},
		lang.BinOp{Kind: lang.Div},
		lang.Print{Format: 'd'},
	}
	m := NewMachine()
	e := NewExecution(m, code, 0)
	out, err := e.Run(0)
	require.NoError(t, err)
	assert.Equal(t, "-4", string(out), "floor(-7/2) == -4, not Go's truncating -3")
}

func TestExecModConsistentWithFloorDiv(t *testing.T) {
	code := []lang.Instruction{
		lang.Constant{Value: -7},
		lang.Constant{Value: 2},
		lang.BinOp{Kind: lang.Mod},
		lang.Print{Format: 'd'},
	}
	m := NewMachine()
	e := NewExecution(m, code, 0)
	out, err := e.Run(0)
	require.NoError(t, err)
	assert.Equal(t, "1", string(out), "-7 - floor(-7/2)*2 == -7 - (-4*2) == 1")
}

func TestExecLogicalAndOr(t *testing.T) {
	code := []lang.Instruction{
		lang.Constant{Value: 1},
		lang.Constant{Value: 0},
		lang.BinOp{Kind: lang.LogicalOr},
		lang.Print{Format: 'd'},
	}
	m := NewMachine()
	e := NewExecution(m, code, 0)
	out, err := e.Run(0)
	require.NoError(t, err)
	assert.Equal(t, "1", string(out))
}
