package domain

import (
	"errors"
	"fmt"
)

type FailureKind string

const (
	FailureRemoteError    FailureKind = "RemoteError"
	FailureNoData         FailureKind = "NoData"
	FailurePackagingError FailureKind = "PackagingError"
)

// ReportFailure descreve uma falha na geração de relatório de um merchant ou do pacote
type ReportFailure struct {
	MerchantLabel string      `json:"merchant"`
	Kind          FailureKind `json:"kind"`
	StatusCode    int         `json:"status_code,omitempty"`
	Detail        string      `json:"detail"`
}

func (f *ReportFailure) Error() string {
	if f.MerchantLabel == "" {
		return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
	}
	return fmt.Sprintf("%s for %s: %s", f.Kind, f.MerchantLabel, f.Detail)
}

func NewRemoteFailure(merchantLabel string, statusCode int, detail string) *ReportFailure {
	return &ReportFailure{
		MerchantLabel: merchantLabel,
		Kind:          FailureRemoteError,
		StatusCode:    statusCode,
		Detail:        detail,
	}
}

func NewNoDataFailure(merchantLabel string) *ReportFailure {
	return &ReportFailure{
		MerchantLabel: merchantLabel,
		Kind:          FailureNoData,
		Detail:        fmt.Sprintf("No data for %s", merchantLabel),
	}
}

func NewPackagingFailure(detail string) *ReportFailure {
	return &ReportFailure{
		Kind:   FailurePackagingError,
		Detail: detail,
	}
}

// IsFailureKind verifica se err carrega uma ReportFailure do tipo informado
func IsFailureKind(err error, kind FailureKind) bool {
	var failure *ReportFailure
	if errors.As(err, &failure) {
		return failure.Kind == kind
	}
	return false
}
