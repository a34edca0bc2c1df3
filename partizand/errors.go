package partizand

import (
	"fmt"

	"github.com/itchio/partizan/partitions"
)

type Error interface {
	error
	RpcErrorCode() int64
	RpcErrorMessage() string
	RpcErrorData() map[string]interface{}
}

type RpcError struct {
	Code    int64
	Message string
}

var _ Error = (*RpcError)(nil)

func (re *RpcError) RpcErrorCode() int64 {
	return re.Code
}

func (re *RpcError) RpcErrorMessage() string {
	return re.Message
}

func (re *RpcError) RpcErrorData() map[string]interface{} {
	return nil
}

func (re *RpcError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", re.Code, re.Message)
}

//

var _ Error = Code(0)

var codeMessages = map[Code]string{
	CodeUnsupportedPlatform: "This method only works on Windows.",
}

func (code Code) RpcErrorMessage() string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return fmt.Sprintf("partizand error %d", code)
}

func (code Code) RpcErrorCode() int64 {
	return int64(code)
}

func (code Code) RpcErrorData() map[string]interface{} {
	return nil
}

func (code Code) Error() string {
	return code.RpcErrorMessage()
}

func (code Code) String() string {
	return fmt.Sprintf("partizand error: %s", code.Error())
}

//

type causer interface {
	Cause() error
}

func AsPartizandError(err error) (Error, bool) {
	if err == nil {
		return nil, false
	}

	if err == partitions.ErrUnsupported {
		return CodeUnsupportedPlatform, true
	}

	if se, ok := err.(causer); ok {
		return AsPartizandError(se.Cause())
	}

	if ee, ok := err.(Error); ok {
		return ee, true
	}

	return nil, false
}
