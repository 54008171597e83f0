package handlers

import (
	"net/url"
	"strconv"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/api"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	coreServices "github.com/hpc-fleet/hpc-fleet-manager/pkg/services"
)

// parseListArguments builds the database paging arguments from the request.
// The nextToken parameter is the page number handed out by a previous
// response.
func parseListArguments(query url.Values) (*coreServices.ListArguments, *errors.ServiceError) {
	listArgs := coreServices.NewListArguments(query)
	if token := query.Get("nextToken"); token != "" {
		page, err := strconv.Atoi(token)
		if err != nil || page < 1 {
			return nil, errors.FailedToParseQueryParams("nextToken %q is not valid", token)
		}
		listArgs.Page = page
	}
	if err := listArgs.Validate(); err != nil {
		return nil, errors.FailedToParseQueryParams("unable to list: %s", err.Error())
	}
	return listArgs, nil
}

// presentNextToken returns the token for the next page, or empty when the
// listing is exhausted.
func presentNextToken(paging *api.PagingMeta) string {
	if paging.Page*paging.Size >= paging.Total {
		return ""
	}
	return strconv.Itoa(paging.Page + 1)
}
