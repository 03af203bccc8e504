package handlers

import (
	"net/http"
	"sort"
)

// PaymentMethod is a supported payment method and the agent number deposits are sent to
// swagger:model PaymentMethod
type PaymentMethod struct {
	Method      string `json:"method"`
	AgentNumber string `json:"agent_number"`
}

// NewPaymentMethodsHandler returns an HTTP handler listing payment methods.
// @Summary List payment methods
// @Tags wallet
// @Produce json
// @Success 200 {array} handlers.PaymentMethod
// @Router /wallet/methods [get]
func NewPaymentMethodsHandler(agentNumbers map[string]string) http.HandlerFunc {
	methods := make([]PaymentMethod, 0, len(agentNumbers))
	for m, n := range agentNumbers {
		methods = append(methods, PaymentMethod{Method: m, AgentNumber: n})
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i].Method < methods[j].Method })

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, methods)
	}
}
