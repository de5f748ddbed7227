package action

import (
	"github.com/jsamuelsen11/draftdesk/internal/domain/notice"
	"github.com/jsamuelsen11/draftdesk/internal/domain/record"
	"github.com/jsamuelsen11/draftdesk/internal/ports"
)

// ToDomainResponse converts a backend action response to the port shape.
// Absent record and notice stay nil.
func ToDomainResponse(dto *ResponseDTO) *ports.ActionResponse {
	resp := &ports.ActionResponse{RedirectURL: dto.RedirectURL}
	if dto.Notice != nil {
		n := ToDomainNotice(*dto.Notice)
		resp.Notice = &n
	}
	if dto.Record != nil {
		r := ToDomainRecord(dto.Record)
		resp.Record = &r
	}
	return resp
}

// ToDomainNotice converts a backend notice. A missing type is reported as
// success, matching the backend's default.
func ToDomainNotice(dto NoticeDTO) notice.Notice {
	typ := notice.Type(dto.Type)
	if typ == "" {
		typ = notice.TypeSuccess
	}
	return notice.Notice{Message: dto.Message, Type: typ}
}

// ToDomainRecord converts a backend record, collapsing field errors to
// their messages.
func ToDomainRecord(dto *RecordDTO) record.Record {
	errs := make(map[string]string, len(dto.Errors))
	for field, e := range dto.Errors {
		errs[field] = e.Message
	}

	return record.New(&record.Record{
		ID:        dto.ID,
		Title:     dto.Title,
		Params:    dto.Params,
		Errors:    errs,
		Populated: dto.Populated,
	})
}
