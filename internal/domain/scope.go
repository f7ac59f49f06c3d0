package domain

import "context"

type entityScopeKey struct{}

// WithEntityScope restringe as operações feitas com este contexto aos dados de uma entidade
func WithEntityScope(ctx context.Context, entityID uint) context.Context {
	return context.WithValue(ctx, entityScopeKey{}, entityID)
}

// EntityScope devolve a entidade do contexto. Sem escopo (administradores e
// rotinas internas) o acesso não é restrito.
func EntityScope(ctx context.Context) (uint, bool) {
	entityID, ok := ctx.Value(entityScopeKey{}).(uint)
	return entityID, ok
}

func CanAccessEntity(ctx context.Context, entityID uint) bool {
	scope, scoped := EntityScope(ctx)
	return !scoped || scope == entityID
}
