package auditing

import "errors"

var (
	ErrSiteNotFound        = errors.New("site não encontrado")
	ErrAuditNotFound       = errors.New("auditoria não encontrada")
	ErrPageInsightNotFound = errors.New("página auditada não encontrada")
	ErrEventNotFound       = errors.New("evento não encontrado")
	ErrAIInsightNotFound   = errors.New("insight não encontrado")
)
