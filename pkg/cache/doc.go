// Package cache provides a small generic LRU cache.
//
// clienthints uses it to remember string-parsing results per User-Agent:
//
//	c := cache.New[string, clientdetect.Result](1024)
//	res := c.GetOrAdd(ua, func() clientdetect.Result {
//		return clientdetect.DetectString(ua, clientdetect.Signals{})
//	})
package cache
