package blogs

import "strconv"

func CanonicalPath(id int64, slug string) string {
	path := "/blog/" + strconv.FormatInt(id, 10)
	if slug == "" {
		return path
	}
	return path + "/" + slug
}
