package bindings

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOk    = "ok"
	resultError = "error"
)

var (
	messagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tokenfactory",
		Name:      "messages_total",
		Help:      "Token factory messages dispatched, by method and result.",
	}, []string{"method", "result"})

	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tokenfactory",
		Name:      "queries_total",
		Help:      "Token factory queries served, by query and result.",
	}, []string{"query", "result"})
)

func resultLabel(err error) string {
	if err != nil {
		return resultError
	}
	return resultOk
}
