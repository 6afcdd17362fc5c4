package api

import "context"

type ctxKey string

const ctxKeyApplicant ctxKey = "applicant"

func WithApplicantID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyApplicant, id)
}

func ApplicantIDFromContext(ctx context.Context) string {
	v := ctx.Value(ctxKeyApplicant)
	if v == nil {
		return ""
	}
	id, _ := v.(string)
	return id
}
