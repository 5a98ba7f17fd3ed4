package seed

import "github.com/relatecrm/backend/domain"

// DemoData returns the deterministic demo dataset. Ids and timestamps are
// fixed so the front-end and the tests see the same records on every boot.
func DemoData() map[string][]domain.Record {
	return map[string][]domain.Record{
		"companies": {
			{
				"id": "company-1", "name": "Northwind Logistics", "industry": "Transportation",
				"city": "Rotterdam", "size": "201-500", "website": "https://northwind.example",
				"created_at": "2025-05-02T09:00:00Z", "updated_at": "2025-05-02T09:00:00Z",
			},
			{
				"id": "company-2", "name": "Aurora Software", "industry": "Technology",
				"city": "Helsinki", "size": "51-200", "website": "https://aurora.example",
				"created_at": "2025-05-03T10:30:00Z", "updated_at": "2025-05-03T10:30:00Z",
			},
			{
				"id": "company-3", "name": "Granite Financial", "industry": "Finance",
				"city": "Zurich", "size": "501-1000",
				"created_at": "2025-05-04T08:15:00Z", "updated_at": "2025-05-04T08:15:00Z",
			},
			{
				"id": "company-4", "name": "Bluepeak Medical", "industry": "Healthcare",
				"city": "Leeds", "size": "51-200", "parent_company_id": "company-3",
				"created_at": "2025-05-05T11:45:00Z", "updated_at": "2025-05-05T11:45:00Z",
			},
			{
				"id": "company-5", "name": "Terra Foods", "industry": "Consumer Goods",
				"city": "Lyon", "size": "1001+",
				"created_at": "2025-05-06T14:20:00Z", "updated_at": "2025-05-06T14:20:00Z",
			},
		},
		"contacts": {
			{
				"id": "contact-1", "first_name": "Ann", "last_name": "Lee",
				"email": "ann.lee@northwind.example", "phone": "+31 10 555 0101",
				"status": "Customer", "company_id": "company-1",
				"created_at": "2025-05-10T09:00:00Z", "updated_at": "2025-05-10T09:00:00Z",
			},
			{
				"id": "contact-2", "first_name": "Marco", "last_name": "Visser",
				"email": "marco.visser@northwind.example", "status": "Customer",
				"company_id": "company-1",
				"created_at": "2025-05-10T09:05:00Z", "updated_at": "2025-05-10T09:05:00Z",
			},
			{
				"id": "contact-3", "first_name": "Sanna", "last_name": "Korhonen",
				"email": "sanna@aurora.example", "status": "Prospect",
				"company_id": "company-2",
				"created_at": "2025-05-11T10:00:00Z", "updated_at": "2025-05-11T10:00:00Z",
			},
			{
				"id": "contact-4", "first_name": "Felix", "last_name": "Brunner",
				"email": "felix.brunner@granite.example", "status": "Customer",
				"company_id": "company-3",
				"created_at": "2025-05-12T08:30:00Z", "updated_at": "2025-05-12T08:30:00Z",
			},
			{
				// Resolved by company-name match rather than id.
				"id": "contact-5", "first_name": "Priya", "last_name": "Nair",
				"email": "priya.nair@bluepeak.example", "status": "Prospect",
				"company_name": "Bluepeak Medical",
				"created_at": "2025-05-13T13:00:00Z", "updated_at": "2025-05-13T13:00:00Z",
			},
			{
				"id": "contact-6", "first_name": "Louis", "last_name": "Moreau",
				"email": "louis.moreau@terra.example", "status": "Customer",
				"company_id": "company-5",
				"created_at": "2025-05-14T15:45:00Z", "updated_at": "2025-05-14T15:45:00Z",
			},
			{
				// Dangling reference; the create pipeline drops it.
				"id": "contact-7", "first_name": "Greta", "last_name": "Holm",
				"email": "greta.holm@example.org", "status": "Prospect",
				"company_id": "company-404",
				"created_at": "2025-05-15T09:30:00Z", "updated_at": "2025-05-15T09:30:00Z",
			},
			{
				"id": "contact-8", "first_name": "Tomás", "last_name": "Rivera",
				"email": "tomas.rivera@example.org", "status": "Inactive",
				"created_at": "2025-05-16T10:15:00Z", "updated_at": "2025-05-16T10:15:00Z",
			},
		},
		"leads": {
			{
				"id": "lead-1", "name": "Oda Jensen", "company_name": "Aurora Software",
				"email": "oda.jensen@aurora.example", "status": "Qualified", "source": "Referral",
				"created_at": "2025-06-01T09:00:00Z", "updated_at": "2025-06-01T09:00:00Z",
			},
			{
				"id": "lead-2", "name": "Piotr Nowak", "company_name": "Helios Energy",
				"email": "piotr.nowak@example.org", "status": "New", "source": "Web",
				"created_at": "2025-06-02T10:00:00Z", "updated_at": "2025-06-02T10:00:00Z",
			},
			{
				"id": "lead-3", "name": "Ines Castro", "company_name": "Terra Foods",
				"email": "ines.castro@terra.example", "status": "Qualified", "source": "Event",
				"created_at": "2025-06-03T11:00:00Z", "updated_at": "2025-06-03T11:00:00Z",
			},
			{
				"id": "lead-4", "name": "Dara O'Brien", "email": "dara.obrien@example.org",
				"status": "Contacted", "source": "Web",
				"created_at": "2025-06-04T12:00:00Z", "updated_at": "2025-06-04T12:00:00Z",
			},
			{
				"id": "lead-5", "name": "Mei Tanaka", "company_name": "Granite Financial",
				"email": "mei.tanaka@granite.example", "status": "Qualified", "source": "Referral",
				"created_at": "2025-06-05T13:00:00Z", "updated_at": "2025-06-05T13:00:00Z",
			},
		},
		"opportunities": {
			{
				"id": "opportunity-1", "name": "Northwind fleet renewal", "stage": "Proposal",
				"value": 84000, "company_id": "company-1", "contact_id": "contact-1",
				"close_date": "2025-09-30",
				"created_at": "2025-06-10T09:00:00Z", "updated_at": "2025-06-10T09:00:00Z",
			},
			{
				"id": "opportunity-2", "name": "Aurora platform licence", "stage": "Discovery",
				"value": 42000, "company_id": "company-2", "contact_id": "contact-3",
				"close_date": "2025-10-15",
				"created_at": "2025-06-11T10:00:00Z", "updated_at": "2025-06-11T10:00:00Z",
			},
			{
				"id": "opportunity-3", "name": "Granite reporting suite", "stage": "Negotiation",
				"value": 120500, "company_id": "company-3", "contact_id": "contact-4",
				"close_date": "2025-08-31",
				"created_at": "2025-06-12T11:00:00Z", "updated_at": "2025-06-12T11:00:00Z",
			},
			{
				"id": "opportunity-4", "name": "Terra distribution pilot", "stage": "Won",
				"value": 36000, "company_id": "company-5", "contact_id": "contact-6",
				"close_date": "2025-07-01",
				"created_at": "2025-06-13T12:00:00Z", "updated_at": "2025-06-13T12:00:00Z",
			},
		},
		"tasks": {
			{
				"id": "task-1", "title": "Send proposal to Northwind", "status": "Open",
				"priority": "High", "due_date": "2025-07-05", "contact_id": "contact-1",
				"opportunity_id": "opportunity-1",
				"created_at": "2025-06-20T09:00:00Z", "updated_at": "2025-06-20T09:00:00Z",
			},
			{
				"id": "task-2", "title": "Schedule Aurora demo", "status": "Open",
				"priority": "Medium", "due_date": "2025-07-08", "contact_id": "contact-3",
				"opportunity_id": "opportunity-2",
				"created_at": "2025-06-21T10:00:00Z", "updated_at": "2025-06-21T10:00:00Z",
			},
			{
				"id": "task-3", "title": "Review Granite contract", "status": "In Progress",
				"priority": "High", "due_date": "2025-07-02", "contact_id": "contact-4",
				"opportunity_id": "opportunity-3",
				"created_at": "2025-06-22T11:00:00Z", "updated_at": "2025-06-22T11:00:00Z",
			},
			{
				"id": "task-4", "title": "Follow up with Bluepeak", "status": "Open",
				"priority": "Low", "due_date": "2025-07-15", "contact_id": "contact-5",
				"created_at": "2025-06-23T12:00:00Z", "updated_at": "2025-06-23T12:00:00Z",
			},
			{
				"id": "task-5", "title": "Archive Terra pilot notes", "status": "Done",
				"priority": "Low", "due_date": "2025-06-28",
				"created_at": "2025-06-24T13:00:00Z", "updated_at": "2025-06-24T13:00:00Z",
			},
		},
		"activities": {
			{
				"id": "activity-1", "type": "call", "subject": "Intro call with Ann Lee",
				"notes": "Discussed fleet renewal scope.", "date": "2025-06-15T14:00:00Z",
				"contact_id": "contact-1", "company_id": "company-1",
				"created_at": "2025-06-15T14:30:00Z", "updated_at": "2025-06-15T14:30:00Z",
			},
			{
				"id": "activity-2", "type": "email", "subject": "Aurora pricing follow-up",
				"notes": "Sent revised licence tiers.", "date": "2025-06-16T09:00:00Z",
				"contact_id": "contact-3", "company_id": "company-2",
				"created_at": "2025-06-16T09:05:00Z", "updated_at": "2025-06-16T09:05:00Z",
			},
			{
				"id": "activity-3", "type": "meeting", "subject": "Granite quarterly review",
				"notes": "Walked through reporting requirements.", "date": "2025-06-17T13:00:00Z",
				"contact_id": "contact-4", "company_id": "company-3",
				"created_at": "2025-06-17T15:00:00Z", "updated_at": "2025-06-17T15:00:00Z",
			},
			{
				"id": "activity-4", "type": "call", "subject": "Bluepeak discovery call",
				"date":       "2025-06-18T10:00:00Z",
				"contact_id": "contact-5", "company_id": "company-4",
				"created_at": "2025-06-18T10:45:00Z", "updated_at": "2025-06-18T10:45:00Z",
			},
			{
				"id": "activity-5", "type": "email", "subject": "Terra pilot wrap-up",
				"notes": "Shared pilot results and next steps.", "date": "2025-06-19T16:00:00Z",
				"contact_id": "contact-6", "company_id": "company-5",
				"created_at": "2025-06-19T16:10:00Z", "updated_at": "2025-06-19T16:10:00Z",
			},
			{
				"id": "activity-6", "type": "note", "subject": "Lead routing cleanup",
				"notes": "Reassigned stale web leads.", "date": "2025-06-20T08:00:00Z",
				"created_at": "2025-06-20T08:05:00Z", "updated_at": "2025-06-20T08:05:00Z",
			},
		},
	}
}
