package tracking

import "errors"

var (
	ErrSiteNotFound         = errors.New("site não encontrado")
	ErrKeywordNotFound      = errors.New("palavra-chave não encontrada")
	ErrSerpSnapshotNotFound = errors.New("snapshot da SERP não encontrado")
	ErrCompetitorNotFound   = errors.New("concorrente não encontrado")
	ErrGapNotFound          = errors.New("lacuna de concorrente não encontrada")
	ErrRecordNotFound       = errors.New("registro não encontrado")

	// A palavra-chave ou o concorrente pertence a outro site
	ErrSiteMismatch = errors.New("registro pertence a outro site")
)
