package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases/cataloging"
)

func ListBenchmarks(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		listFilter, err := listFilter(r)
		if err != nil {
			writeInvalidParam(w, "limit/offset")
			return
		}

		benchmarks, err := service.ListBenchmarks(r.Context(), domain.BenchmarkFilter{
			ListFilter: listFilter,
			Industry:   r.URL.Query().Get("industry"),
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar benchmarks")
			return
		}

		writeJSON(w, http.StatusOK, benchmarks)
	})
}

func GetBenchmark(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		benchmark, err := service.GetBenchmark(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar benchmark")
			return
		}

		writeJSON(w, http.StatusOK, benchmark)
	})
}

// GetLatestBenchmark retorna o benchmark mais recente do setor
func GetLatestBenchmark(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		industry := httprouter.ParamsFromContext(r.Context()).ByName("industry")

		benchmark, err := service.GetLatestBenchmark(r.Context(), industry)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar benchmark")
			return
		}

		writeJSON(w, http.StatusOK, benchmark)
	})
}

func CreateBenchmark(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var benchmark domain.Benchmark
		if err := decodeBody(r, &benchmark); err != nil {
			writeInvalidBody(w, err)
			return
		}

		created, err := service.CreateBenchmark(r.Context(), &benchmark)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar benchmark")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateBenchmark(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var benchmark domain.Benchmark
		if err := decodeBody(r, &benchmark); err != nil {
			writeInvalidBody(w, err)
			return
		}
		benchmark.ID = id

		updated, err := service.UpdateBenchmark(r.Context(), &benchmark)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar benchmark")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func DeleteBenchmark(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.DeleteBenchmark(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover benchmark")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
