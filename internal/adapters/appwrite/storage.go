package appwrite

import "net/url"

// FileViewURL возвращает ссылку на просмотр файла из бакета.
func (c *Client) FileViewURL(bucketID, fileID string) string {
	params := url.Values{}
	params.Set("project", c.projectID)
	return c.buildURL("/storage/buckets/"+url.PathEscape(bucketID)+"/files/"+url.PathEscape(fileID)+"/view", params)
}
