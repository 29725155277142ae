package manhwaRepository

const (
	queryGetAllManhwas = `
		SELECT
			id,
			title,
			categories
		FROM "Manhwa"
		ORDER BY id
	`

	querySearchManhwasByTitle = `
		SELECT
			id,
			title,
			categories
		FROM "Manhwa"
		WHERE title ILIKE :pattern
		ORDER BY id
	`

	queryGetManhwasByCategory = `
		SELECT
			id,
			title,
			categories
		FROM "Manhwa"
		WHERE EXISTS (
			SELECT 1
			FROM unnest(categories) AS category
			WHERE btrim(regexp_replace(lower(category), '(\W|_)+', '-', 'g'), '-') = :token
		)
		ORDER BY id
	`

	queryGetAllCategories = `
		SELECT unnest(categories) AS category
		FROM "Manhwa"
	`
)
