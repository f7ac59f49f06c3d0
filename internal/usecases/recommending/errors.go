package recommending

import "errors"

var ErrRecommendationNotFound = errors.New("recomendação não encontrada")
