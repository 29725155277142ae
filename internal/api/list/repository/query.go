package listRepository

const (
	queryGetManhwasByTitles = `
		SELECT
			id,
			title,
			categories
		FROM "Manhwa"
		WHERE title IN (:titles)
		ORDER BY id
	`

	queryCreateList = `
		INSERT INTO "List" (
			name,
			description,
			slug
		) VALUES (
			:name,
			:description,
			:slug
		)
		RETURNING id
	`

	queryGetAllLists = `
		SELECT
			id,
			name,
			description,
			slug
		FROM "List"
		ORDER BY id
	`

	queryCreateListManhwa = `
		INSERT INTO "ListManhwa" (
			list,
			manhwa
		) VALUES (
			:list,
			:manhwa
		)
	`

	queryGetManhwasByListSlug = `
		SELECT
			"Manhwa".id,
			"Manhwa".title,
			"Manhwa".categories
		FROM "List"
		JOIN "ListManhwa" ON "ListManhwa".list = "List".id
		JOIN "Manhwa" ON "Manhwa".id = "ListManhwa".manhwa
		WHERE "List".slug = :slug
		ORDER BY "ListManhwa".id
	`
)
