package repository

const (
	selectProfile = `SELECT
		id,
		type,
		first_name,
		last_name,
		profession,
		balance,
		created_at,
		updated_at
	FROM profiles`

	selectContract = `SELECT
		id,
		client_id,
		contractor_id,
		status,
		terms,
		created_at
	FROM contracts`

	selectJob = `SELECT
		id,
		contract_id,
		description,
		price,
		paid,
		payment_date,
		created_at
	FROM jobs`
)
